package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rcli/internal/crypto"
	"rcli/internal/domain"
	"rcli/internal/services/text"
)

func textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
	}
	cmd.AddCommand(
		textSignCmd(),
		textVerifyCmd(),
		textGenerateCmd(),
		textEncryptCmd(),
		textDecryptCmd(),
		textKeygenCmd(),
	)
	return cmd
}

type textSignOpts struct {
	Input  string `flag:"input" validate:"required,file_or_stdin"`
	Key    string `flag:"key" validate:"required,file"`
	Format domain.Algorithm
}

func textSignCmd() *cobra.Command {
	opts := textSignOpts{Input: "-", Format: domain.Blake3}
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign text with a blake3 or ed25519 key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			sig, err := wire.Text.Sign(cmd.Context(), opts.Input, opts.Key, opts.Format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Input, "input", "i", opts.Input, "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "signing key file")
	cmd.Flags().Var(&opts.Format, "format", "blake3 or ed25519")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

type textVerifyOpts struct {
	Input     string `flag:"input" validate:"required,file_or_stdin"`
	Key       string `flag:"key" validate:"required,file"`
	Signature string `flag:"sig" validate:"required"`
	Format    domain.Algorithm
}

func textVerifyCmd() *cobra.Command {
	opts := textVerifyOpts{Input: "-", Format: domain.Blake3}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature over text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			ok, err := wire.Text.Verify(cmd.Context(), opts.Input, opts.Key, opts.Signature, opts.Format)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "✓ Signature verified")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "⚠ Signature not verified")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Input, "input", "i", opts.Input, "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "verifying key file")
	cmd.Flags().StringVarP(&opts.Signature, "sig", "s", "", "signature to check")
	cmd.Flags().Var(&opts.Format, "format", "blake3 or ed25519")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}

type textGenerateOpts struct {
	Output string `flag:"output" validate:"required,dir"`
	Format domain.Algorithm
}

func textGenerateCmd() *cobra.Command {
	opts := textGenerateOpts{Format: domain.Blake3}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a blake3 key or an ed25519 key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Output == "" {
				opts.Output = cfg.KeyDir
			}
			if err := check(opts); err != nil {
				return err
			}
			blobs, err := wire.Text.GenerateKeys(opts.Format)
			if err != nil {
				return err
			}
			names, err := text.KeyFileNames(opts.Format)
			if err != nil {
				return err
			}
			var fp domain.Fingerprint
			if opts.Format == domain.Ed25519 {
				if fp, err = ed25519Fingerprint(blobs[0], blobs[1]); err != nil {
					return err
				}
			}
			for i, name := range names {
				path := filepath.Join(opts.Output, name)
				if err := wire.Keys.SaveKey(path, blobs[i]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			if fp != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output directory (default $RCLI_KEY_DIR or .)")
	cmd.Flags().Var(&opts.Format, "format", "blake3 or ed25519")
	return cmd
}

// ed25519Fingerprint checks that pub belongs to seed before anything is
// written, and returns the public key fingerprint.
func ed25519Fingerprint(seedBlob, pubBlob []byte) (domain.Fingerprint, error) {
	seed, err := domain.NewSigningSeed(seedBlob)
	if err != nil {
		return "", err
	}
	pub, err := domain.NewVerifyingKey(pubBlob)
	if err != nil {
		return "", err
	}
	if crypto.PublicEd25519(seed) != pub {
		return "", fmt.Errorf("%w: generated ed25519 public key does not match its seed", domain.ErrCrypto)
	}
	return crypto.Fingerprint(pub), nil
}

type textAEADOpts struct {
	Input string `flag:"input" validate:"required,file_or_stdin"`
	Key   string `flag:"key" validate:"required,file"`
	Nonce string `flag:"nonce" validate:"required,file"`
}

func aeadFlags(cmd *cobra.Command, opts *textAEADOpts) {
	cmd.Flags().StringVarP(&opts.Input, "input", "i", opts.Input, "input file, or - for stdin")
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "32-byte key file")
	cmd.Flags().StringVarP(&opts.Nonce, "nonce", "n", "", "12-byte nonce file")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("nonce")
}

func textEncryptCmd() *cobra.Command {
	opts := textAEADOpts{Input: "-"}
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with ChaCha20-Poly1305 (base64 output)",
		Long: "Encrypt text with ChaCha20-Poly1305 and print it as unpadded base64.\n\n" +
			"Never encrypt two different messages with the same key and nonce.\n" +
			"Run \"rcli text keygen\" for a fresh pair per message.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			out, err := wire.Text.Encrypt(cmd.Context(), opts.Input, opts.Key, opts.Nonce)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	aeadFlags(cmd, &opts)
	return cmd
}

func textDecryptCmd() *cobra.Command {
	opts := textAEADOpts{Input: "-"}
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt base64 ChaCha20-Poly1305 ciphertext",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check(opts); err != nil {
				return err
			}
			out, err := wire.Text.Decrypt(cmd.Context(), opts.Input, opts.Key, opts.Nonce)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	aeadFlags(cmd, &opts)
	return cmd
}

type textKeygenOpts struct {
	Output string `flag:"output" validate:"required,dir"`
}

func textKeygenCmd() *cobra.Command {
	var opts textKeygenOpts
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a ChaCha20-Poly1305 key and nonce",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Output == "" {
				opts.Output = cfg.KeyDir
			}
			if err := check(opts); err != nil {
				return err
			}
			key, nonce, err := wire.Text.GenerateSymmetricKey()
			if err != nil {
				return err
			}
			files := []struct {
				name string
				blob []byte
			}{
				{text.SymmetricKeyFile, key.Slice()},
				{text.SymmetricNonceFile, nonce.Slice()},
			}
			for _, f := range files {
				path := filepath.Join(opts.Output, f.name)
				if err := wire.Keys.SaveKey(path, f.blob); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output directory (default $RCLI_KEY_DIR or .)")
	return cmd
}
