package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/triumpharcade/triumph-go/internal/crypto"
)

func (c *cli) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Send a GET request and print the response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			resp, err := client.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("get %s: %w", args[0], err)
			}
			c.log.Info("get", zap.String("path", args[0]), zap.Int("status", resp.StatusCode))
			return c.printJSON(resp.Data)
		},
	}
}

func (c *cli) newPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <path> [json|-]",
		Short: "Send an encrypted POST request and print the decrypted response",
		Long: `Send an encrypted POST request and print the decrypted response.

The payload is read from the second argument, or from stdin when it is
omitted or "-". It must be valid JSON.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := c.input(args, 1)
			if err != nil {
				return err
			}
			var payload any
			if err := json.Unmarshal([]byte(raw), &payload); err != nil {
				return fmt.Errorf("payload is not valid JSON: %w", err)
			}

			client, err := c.client()
			if err != nil {
				return err
			}

			ctx, cancel := c.requestContext(cmd)
			defer cancel()

			resp, err := client.Post(ctx, args[0], payload)
			if err != nil {
				return fmt.Errorf("post %s: %w", args[0], err)
			}
			c.log.Info("post", zap.String("path", args[0]), zap.Int("status", resp.StatusCode))
			return c.printJSON(resp.Data)
		},
	}
}

func (c *cli) newSealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seal [text|-]",
		Short: "Encrypt text into a hex envelope with the configured key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := c.key()
			if err != nil {
				return err
			}
			text, err := c.input(args, 0)
			if err != nil {
				return err
			}
			envelope, err := crypto.SealString(key, text)
			if err != nil {
				return fmt.Errorf("seal: %w", err)
			}
			fmt.Fprintln(c.streams.Stdout, envelope)
			return nil
		},
	}
}

func (c *cli) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open [hex|-]",
		Short: "Decrypt a hex envelope with the configured key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := c.key()
			if err != nil {
				return err
			}
			envelope, err := c.input(args, 0)
			if err != nil {
				return err
			}
			plaintext, err := crypto.OpenString(key, envelope)
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}
			fmt.Fprintln(c.streams.Stdout, plaintext)
			return nil
		},
	}
}

func (c *cli) newKeygenCmd() *cobra.Command {
	var secret, salt string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a new hex-encoded API key",
		Long: `Print a new hex-encoded API key.

With --from-secret the key is derived with HKDF-SHA-256 instead of drawn at
random, so the same secret and salt always produce the same key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				key []byte
				err error
			)
			if secret != "" {
				key, err = crypto.DeriveKey([]byte(secret), []byte(salt), nil)
			} else {
				key, err = crypto.GenerateKey()
			}
			if err != nil {
				return fmt.Errorf("keygen: %w", err)
			}
			fmt.Fprintln(c.streams.Stdout, crypto.EncodeKey(key))
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "from-secret", "", "derive the key from this secret")
	cmd.Flags().StringVar(&salt, "salt", "", "HKDF salt used with --from-secret")
	return cmd
}

// key parses the configured API key.
func (c *cli) key() ([]byte, error) {
	if err := c.cfg.RequireKey(); err != nil {
		return nil, err
	}
	return crypto.ParseKey(c.cfg.APIKey)
}
