package admin

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"licensehub/internal/infrastructure/auth"
	"licensehub/internal/interfaces/cli/bootstrap"
)

var (
	opts bootstrap.Options
	cost int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrator credential tools",
	}

	opts.Bind(cmd)

	cmd.AddCommand(
		newTokenCommand(),
		newHashPasswordCommand(),
	)

	return cmd
}

func newTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print an access token for the configured administrator",
		RunE:  runToken,
	}
}

func newHashPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a password for auth.admin.password_hash",
		Long:  `Read a password from the terminal (or stdin) and print its bcrypt hash.`,
		RunE:  runHashPassword,
	}

	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost (default 10)")

	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, log, err := opts.Load()
	if err != nil {
		return err
	}
	if cfg.Auth.JWT.Secret == "" || cfg.Auth.Admin.Username == "" {
		return errors.New("auth.jwt.secret and auth.admin.username must be configured")
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessTTL())
	token, err := jwtSvc.Generate(cfg.Auth.Admin.Username)
	if err != nil {
		return err
	}

	log.Infow("issued admin token from cli", "subject", cfg.Auth.Admin.Username, "expires_at", token.ExpiresAt)
	fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
	return nil
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := auth.NewBcryptPasswordHasher(cost).Hash(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
