package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)

	loginCmd.Flags().StringVar(&loginUsername, "username", "", "用户名")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "密码")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&loginUsername, "username", "", "用户名")
	registerCmd.Flags().StringVar(&loginPassword, "password", "", "密码")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
}

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "登录并保存令牌",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("auth.login", func() error {
			token, err := app.Auth.Login(cmd.Context(), loginUsername, loginPassword)
			if err != nil {
				return err
			}
			return printJSON(cmd, token)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "登出并清除本地令牌",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Auth.Logout(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("已登出")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "查看当前身份与角色",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("auth.whoami", func() error {
			identity, err := app.Auth.WhoAmI(cmd.Context())
			if err != nil {
				return err
			}

			out := map[string]any{
				"sub":  identity.Subject,
				"role": identity.Role,
			}

			// 本地看一眼过期时间，仅展示；权威判断在服务端
			if token, err := app.Session.Token(cmd.Context()); err == nil && token != "" {
				if exp := app.Session.TokenExpiry(token); exp != nil {
					out["expires_at"] = exp
				}
			}

			return printJSON(cmd, out)
		})
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "注册新用户",
	RunE: func(cmd *cobra.Command, args []string) error {
		return gated("auth.register", func() error {
			user, err := app.Auth.Register(cmd.Context(), loginUsername, loginPassword)
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		})
	},
}
