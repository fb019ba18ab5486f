package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	jwtsvc "rcli/internal/services/jwt"
)

func jwtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Sign and verify HS256 JSON Web Tokens",
	}
	cmd.AddCommand(jwtSignCmd(), jwtVerifyCmd())
	return cmd
}

func jwtSignCmd() *cobra.Command {
	opts := jwtsvc.SignOptions{Expiry: "14d"}
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a token with sub, aud and exp claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			token, err := wire.JWT.Sign(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "HMAC key file")
	cmd.Flags().StringVar(&opts.Subject, "sub", "", "subject claim")
	cmd.Flags().StringVar(&opts.Audience, "aud", "", "audience claim")
	cmd.Flags().StringVar(&opts.Expiry, "exp", opts.Expiry, "lifetime: <n>d days, <n>m minutes, <n>M weeks")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

type jwtVerifyOpts struct {
	Key   string `flag:"key" validate:"required,file"`
	Token string `flag:"token" validate:"required"`
}

func jwtVerifyCmd() *cobra.Command {
	var opts jwtVerifyOpts
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a token and print its claims",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			claims, err := wire.JWT.Verify(cmd.Context(), opts.Key, opts.Token)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(claims, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "HMAC key file")
	cmd.Flags().StringVarP(&opts.Token, "token", "t", "", "token to verify")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}
