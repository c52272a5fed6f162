package cmd

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"simpleprops/internal/config"
	"simpleprops/internal/propsfile"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Config captured from flags before Execute()
	SettingsPath string
	FilePath     string
	Encoding     string
	Encrypt      bool
	JSONOutput   bool
	Verbose      bool
	Out          io.Writer
	Err          io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	_, settings, err := config.ResolvePaths(p.SettingsPath, p.FilePath)
	if err != nil {
		return nil, err
	}
	if p.Encoding != "" {
		settings.Encoding = p.Encoding
	}
	if p.Encrypt {
		settings.Encrypt = true
	}
	if err := config.Validate(settings); err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	var logger *slog.Logger
	if p.Verbose {
		logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	file, err := openFile(settings, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		File:     file,
		Settings: settings,
		Logger:   logger,
		Out:      out,
		Err:      errOut,
		JSON:     p.JSONOutput,
	}, nil
}

// openFile opens the properties file named by settings with its encoding
// and transforms.
func openFile(settings config.Settings, logger *slog.Logger) (*propsfile.File, error) {
	enc, err := settings.Charset()
	if err != nil {
		return nil, err
	}
	transforms, err := settings.Transforms()
	if err != nil {
		return nil, err
	}
	return propsfile.Open(settings.File, enc, logger, transforms...)
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "props",
		Short: "Read and edit key = value properties files",
		Long: `props edits line-oriented properties files in place.

Each line is a "key = value" property, a "# comment" or blank. Edits keep
comments, blank lines and ordering intact. Values can be kept encrypted at
rest with --encrypt (key material comes from the environment, see .props.yaml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	rootCmd.PersistentFlags().StringVarP(&provider.FilePath, "file", "f", "", "Properties file (default: from .props.yaml or app.properties)")
	rootCmd.PersistentFlags().StringVar(&provider.SettingsPath, "config", "", "Settings file (default: ./"+config.DefaultSettingsFile+")")
	rootCmd.PersistentFlags().StringVar(&provider.Encoding, "encoding", "", "Character encoding of the properties file")
	rootCmd.PersistentFlags().BoolVar(&provider.Encrypt, "encrypt", false, "Encrypt values at rest")
	rootCmd.PersistentFlags().BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&provider.Verbose, "verbose", "v", false, "Log load and save details to stderr")

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newUnsetCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newCommentCmd(provider))
	rootCmd.AddCommand(newFmtCmd(provider))
	rootCmd.AddCommand(newExportCmd(provider))
	rootCmd.AddCommand(newImportCmd(provider))
	rootCmd.AddCommand(newKeygenCmd(provider))
	rootCmd.AddCommand(newValidateCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
