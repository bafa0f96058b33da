package net

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==================== 查询串构建 ====================

func TestCanonicalQuery_OmitsNilAndEmpty(t *testing.T) {
	var nilID *int64
	values := CanonicalQuery(map[string]any{
		"page":      1,
		"page_size": 10,
		"q":         "",
		"mode":      nil,
		"id":        nilID,
	})

	assert.Equal(t, "page=1&page_size=10", values.Encode())
}

func TestCanonicalQuery_PointerValues(t *testing.T) {
	customerID := int64(7)
	page := 2
	name := "acme"

	values := CanonicalQuery(map[string]any{
		"customer_id": &customerID,
		"page":        &page,
		"name":        &name,
	})

	assert.Equal(t, "7", values.Get("customer_id"))
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "acme", values.Get("name"))
}

func TestCanonicalQuery_DereferencedEmptyStringOmitted(t *testing.T) {
	empty := ""
	values := CanonicalQuery(map[string]any{"q": &empty})
	assert.Empty(t, values.Encode())
}

func TestCanonicalQuery_DefaultFormatting(t *testing.T) {
	values := CanonicalQuery(map[string]any{
		"page_size": 100,
		"active":    true,
	})

	assert.Equal(t, "100", values.Get("page_size"))
	assert.Equal(t, "true", values.Get("active"))
}

func TestTrimmedQ(t *testing.T) {
	assert.Equal(t, "GUIA-2026-000001", TrimmedQ("  GUIA-2026-000001  "))
	assert.Equal(t, "", TrimmedQ("   "))
	assert.Equal(t, "", TrimmedQ(""))
}
