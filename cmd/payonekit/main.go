// Package main provides a diagnostic CLI for the payonekit SDK: it signs
// creditcardcheck requests, prints fingerprint snippet tokens, and renders
// the scripts the tokenizer injects, so integrators can verify their
// credentials and page setup without driving a webview.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/payonekit/pkg/cardtokenizer"
	"github.com/dmitrymomot/payonekit/pkg/config"
	"github.com/dmitrymomot/payonekit/pkg/environment"
	"github.com/dmitrymomot/payonekit/pkg/fingerprint"
	"github.com/dmitrymomot/payonekit/pkg/logger"
)

// credentials are read from the environment (or a .env file) and can be
// overridden per command with flags.
type credentials struct {
	MID          string `env:"PAYONE_MID"`
	AID          string `env:"PAYONE_AID"`
	PortalID     string `env:"PAYONE_PORTAL_ID"`
	PMIPortalKey string `env:"PAYONE_PMI_PORTAL_KEY"`
	Environment  string `env:"PAYONE_ENVIRONMENT" envDefault:"test"`
}

func main() {
	logger.SetAsDefault(logger.New(logger.WithTextFormatter(), logger.WithService("payonekit")))

	cmd := &cli.Command{
		Name:    "payonekit",
		Usage:   "PAYONE client SDK diagnostics",
		Version: "1.0.0",
		Commands: []*cli.Command{
			signCommand(),
			snippetTokenCommand(),
			renderCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "mid", Usage: "Merchant ID"},
		&cli.StringFlag{Name: "aid", Usage: "Sub-account ID"},
		&cli.StringFlag{Name: "portal-id", Usage: "Portal ID"},
		&cli.StringFlag{Name: "key", Usage: "PMI portal key"},
		&cli.StringFlag{Name: "env", Usage: "Environment (test or production)"},
	}
}

// loadRequest merges env credentials with flag overrides into a signed
// request.
func loadRequest(cmd *cli.Command) (cardtokenizer.Request, error) {
	var creds credentials
	if err := config.Load(&creds); err != nil {
		return cardtokenizer.Request{}, err
	}

	if v := cmd.String("mid"); v != "" {
		creds.MID = v
	}
	if v := cmd.String("aid"); v != "" {
		creds.AID = v
	}
	if v := cmd.String("portal-id"); v != "" {
		creds.PortalID = v
	}
	if v := cmd.String("key"); v != "" {
		creds.PMIPortalKey = v
	}
	if v := cmd.String("env"); v != "" {
		creds.Environment = v
	}

	env := environment.Environment(creds.Environment)
	if !env.Valid() {
		return cardtokenizer.Request{}, fmt.Errorf("unknown environment %q", creds.Environment)
	}
	if creds.MID == "" || creds.AID == "" || creds.PortalID == "" || creds.PMIPortalKey == "" {
		return cardtokenizer.Request{}, fmt.Errorf("mid, aid, portal id and portal key are required")
	}

	return cardtokenizer.NewRequest(creds.MID, creds.AID, creds.PortalID, env, creds.PMIPortalKey), nil
}

func signCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "Compute the creditcardcheck request hash for the configured credentials",
		Flags: credentialFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			req, err := loadRequest(cmd)
			if err != nil {
				return err
			}
			fmt.Println(req.Hash)
			return nil
		},
	}
}

func snippetTokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "snippet-token",
		Usage: "Print the device-fingerprint snippet token for a partner/merchant pair",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "partner-id", Usage: "Payla partner ID", Required: true},
			&cli.StringFlag{Name: "merchant-id", Usage: "Partner merchant ID", Required: true},
			&cli.StringFlag{Name: "session-id", Usage: "Session ID (random if omitted)"},
			&cli.StringFlag{Name: "env", Usage: "Environment (test or production)", Value: "test"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			env := environment.Environment(cmd.String("env"))
			if !env.Valid() {
				return fmt.Errorf("unknown environment %q", cmd.String("env"))
			}

			opts := []fingerprint.Option{}
			if id := cmd.String("session-id"); id != "" {
				opts = append(opts, fingerprint.WithSessionID(id))
			}
			tok := fingerprint.New(cmd.String("partner-id"), cmd.String("merchant-id"), env, opts...)
			fmt.Println(tok.SnippetToken())
			return nil
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Print the page-population script the tokenizer would inject",
		Flags: append(credentialFlags(),
			&cli.StringFlag{Name: "submit-button-id", Usage: "Submit control element ID", Value: "submit"},
			&cli.StringFlag{Name: "language", Usage: "Widget language (en or de)", Value: "en"},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			req, err := loadRequest(cmd)
			if err != nil {
				return err
			}

			cfg := cardtokenizer.Config{
				CardPan:         cardtokenizer.Field{Selector: "cardpan", Type: "input"},
				CardCVC2:        cardtokenizer.Field{Selector: "cardcvc2", Type: "password"},
				CardExpireMonth: cardtokenizer.Field{Selector: "cardexpiremonth", Type: "text"},
				CardExpireYear:  cardtokenizer.Field{Selector: "cardexpireyear", Type: "text"},
				Language:        cardtokenizer.Language(cmd.String("language")),
				SubmitButtonID:  cmd.String("submit-button-id"),
			}

			fmt.Println(cardtokenizer.PopulationScript(req, cfg, []cardtokenizer.CardType{
				cardtokenizer.CardTypeVisa,
				cardtokenizer.CardTypeMastercard,
			}))
			return nil
		},
	}
}
