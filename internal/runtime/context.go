// Package runtime provides application runtime context for chronosdeck.
package runtime

import (
	"context"

	"chronosdeck/internal/ai"
	"chronosdeck/internal/auth"
	"chronosdeck/internal/chat"
	"chronosdeck/internal/config"
	apperrors "chronosdeck/internal/errors"
	"chronosdeck/internal/model"
	"chronosdeck/internal/notify"
	"chronosdeck/internal/output"
	"chronosdeck/internal/paths"
	"chronosdeck/internal/quiz"
	"chronosdeck/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.Config
	DB        *storage.DB
	Resolver  paths.Resolver
	Session   *auth.Session
	Scheduler *notify.Scheduler
	Formatter *output.Formatter

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context. Configuration is loaded, the database
// opened, and the auth session restored or bootstrapped. A bootstrap failure
// leaves the session signed out rather than failing startup.
func New(ctx context.Context, opts Options) (*Context, error) {
	cfg := config.Load()

	db, err := storage.Open(storage.Options{
		Path:     cfg.DatabasePath,
		InMemory: cfg.InMemory(),
	})
	if err != nil {
		return nil, err
	}

	session := auth.NewSession(db, auth.NewLocalProvider())
	session.Bootstrap(ctx, cfg.BootstrapToken)

	sinks := []notify.Sink{notify.NewTerminalSink()}
	if cfg.NotifyWebhookURL != "" {
		sinks = append(sinks, notify.NewWebhookSink(cfg.NotifyWebhookURL, cfg.HTTPTimeout))
	}
	scheduler := notify.NewScheduler(sinks...)
	scheduler.RequestPermission(cfg.NotificationsEnabled)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		Config:    cfg,
		DB:        db,
		Resolver:  paths.NewResolver(cfg.Tenant),
		Session:   session,
		Scheduler: scheduler,
		Formatter: formatter,
		Debug:     opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// RequireUser returns the current principal, or ErrNotLoggedIn when no named
// user is signed in. Anonymous principals do not count.
func (c *Context) RequireUser() (*model.Principal, error) {
	p := c.Session.Current()
	if !p.Named() {
		return nil, apperrors.NewUserError(
			apperrors.ErrNotLoggedIn.Error(),
			"Run 'chronosdeck login --name <your name>' first",
		)
	}
	return p, nil
}

// Subjects returns the subject repository for the signed-in user.
func (c *Context) Subjects() (*storage.SubjectRepo, error) {
	p, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	return storage.NewSubjectRepo(c.DB, c.Resolver, p.UID), nil
}

// Tasks returns the task repository for the signed-in user.
func (c *Context) Tasks() (*storage.TaskRepo, error) {
	p, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	return storage.NewTaskRepo(c.DB, c.Resolver, p.UID), nil
}

// Decks returns the deck repository for the signed-in user.
func (c *Context) Decks() (*storage.DeckRepo, error) {
	p, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	return storage.NewDeckRepo(c.DB, c.Resolver, p.UID), nil
}

// Cards returns the card repository for the signed-in user.
func (c *Context) Cards() (*storage.CardRepo, error) {
	p, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	return storage.NewCardRepo(c.DB, c.Resolver, p.UID), nil
}

// Sessions returns the study-session repository for the signed-in user.
func (c *Context) Sessions() (*storage.SessionRepo, error) {
	p, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	return storage.NewSessionRepo(c.DB, c.Resolver, p.UID), nil
}

// QuizHistory returns the quiz-history repository for the signed-in user.
func (c *Context) QuizHistory() (*storage.QuizRepo, error) {
	p, err := c.RequireUser()
	if err != nil {
		return nil, err
	}
	return storage.NewQuizRepo(c.DB, c.Resolver, p.UID), nil
}

// AI returns a generative client built from configuration. Fails with a
// user error when no API key is configured.
func (c *Context) AI() (*ai.Client, error) {
	client, err := ai.New(ai.Config{
		APIKey:  c.Config.GeminiAPIKey,
		Model:   c.Config.GeminiModel,
		Timeout: c.Config.HTTPTimeout,
	})
	if err != nil {
		return nil, apperrors.NewUserError(
			"AI features are not configured",
			"Set GEMINI_API_KEY in your environment",
		)
	}
	return client, nil
}

// QuizEngine returns a quiz engine wired to the generative client and the
// signed-in user's quiz history.
func (c *Context) QuizEngine() (*quiz.Engine, error) {
	client, err := c.AI()
	if err != nil {
		return nil, err
	}
	history, err := c.QuizHistory()
	if err != nil {
		return nil, err
	}
	return quiz.NewEngine(client, history), nil
}

// Assistant returns a chat assistant with a fresh transcript.
func (c *Context) Assistant() (*chat.Assistant, error) {
	client, err := c.AI()
	if err != nil {
		return nil, err
	}
	return chat.NewAssistant(client), nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
