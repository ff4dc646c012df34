package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agriai/internal/advisor"
	"agriai/internal/config"
	"agriai/internal/feedback"
	"agriai/internal/locale"
	"agriai/internal/logging"
	"agriai/internal/notify"
	"agriai/internal/session"
	"agriai/internal/store"

	"agriai/cmd/agriai/ui"
)

// appStyles returns the terminal styles for the detected theme.
func appStyles() ui.Styles {
	return ui.DefaultStyles()
}

// appContext carries the wired application state. Everything is constructed
// once at startup and injected into commands; there are no ambient
// singletons beyond the cobra command tree itself.
type appContext struct {
	StateDir string
	Config   *config.Config
	Lang     locale.Locale

	Store    *store.Store
	Sessions *session.Manager
	Feedback *feedback.Ledger
	Notify   *notify.Registry
}

var app *appContext

// initApp resolves the state directory, loads config, starts the category
// logger, and wires the local state managers.
func initApp() (*appContext, error) {
	stateDir, err := config.StateDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(stateDir)
	if err != nil {
		return nil, err
	}

	if langFlag != "" {
		cfg.Language = langFlag
	}
	lang, err := locale.Parse(cfg.Language)
	if err != nil {
		return nil, err
	}

	if err := logging.Initialize(stateDir, logging.Settings{
		Debug:      cfg.Logging.DebugMode,
		Categories: cfg.Logging.Categories,
		Level:      cfg.Logging.Level,
	}); err != nil {
		return nil, err
	}

	st, err := store.Open(stateDir)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(st)
	sessions.Restore()

	return &appContext{
		StateDir: stateDir,
		Config:   cfg,
		Lang:     lang,
		Store:    st,
		Sessions: sessions,
		Feedback: feedback.NewLedger(st),
		Notify:   notify.NewRegistry(st),
	}, nil
}

// newAdvisorClient builds the Gemini client from the flag or config API key.
func newAdvisorClient(ctx context.Context) (*advisor.Client, error) {
	key := apiKeyFlag
	if key == "" {
		key = app.Config.Gemini.APIKey
	}
	return advisor.New(ctx, key, app.Config.Gemini.Model)
}

// requestContext returns a context bounded by the --timeout flag.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// requireLogin fails a capability command when nobody is logged in.
func requireLogin() error {
	if app.Sessions.Current() == nil {
		return fmt.Errorf("%s", locale.Message(app.Lang, locale.MsgLoginRequired))
	}
	return nil
}

// imageMIMETypes maps the photo extensions the product accepts.
var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// loadImage reads a photo from disk and resolves its MIME type from the
// extension.
func loadImage(path string) (advisor.Image, error) {
	mime, ok := imageMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return advisor.Image{}, fmt.Errorf("unsupported image type %q (use jpg, png, or webp)", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return advisor.Image{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return advisor.Image{}, fmt.Errorf("image file %s is empty", path)
	}
	return advisor.Image{Data: data, MIMEType: mime}, nil
}

// feedbackHint prints the rate-this-feature nudge when the feature's
// cooldown has elapsed.
func feedbackHint(key feedback.FeatureKey) {
	if !app.Feedback.ShouldPrompt(key) {
		return
	}
	styles := appStyles()
	hint := fmt.Sprintf(locale.Message(app.Lang, locale.MsgFeedbackAsk), key)
	fmt.Println(styles.Muted.Render(hint))
}

var timeFormat = time.RFC822
