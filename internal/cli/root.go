// Package cli implements the propbind command tree.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"propbind/internal/config"
	"propbind/internal/convert"
	"propbind/internal/logger"
)

var version = "dev"

var (
	configPath    string
	cultureFlag   string
	formatFlag    string
	verboseFlag   bool
	strictFlag    bool
	enumFlags     []string
	converterList []string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "propbind",
	Short: "Check and inspect declarative binding files",
	Long: `propbind validates YAML and TOML binding files, which declare how view
controls are synchronised with model properties, and prints what they compile to.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML settings file")
	flags.StringVar(&cultureFlag, "culture", "", "default culture for bindings (BCP-47 tag)")
	flags.StringVar(&formatFlag, "format", "", "binding file format: yaml, toml or auto")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "trace binding lifecycles to stderr")
	flags.BoolVar(&strictFlag, "strict-one-time", false, "OneTime bindings push once without subscribing")
	flags.StringArrayVar(&enumFlags, "enum", nil, "declare an enum type as name=Member1,Member2 (repeatable)")
	flags.StringSliceVar(&converterList, "converter", nil, "declare an application converter name (repeatable)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves settings with flags taking precedence over the
// environment and the settings file.
func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("culture") {
		c.Culture = cultureFlag
	}

	if flags.Changed("format") {
		c.Format = formatFlag
	}

	if flags.Changed("verbose") {
		c.Verbose = verboseFlag
	}

	if flags.Changed("strict-one-time") {
		c.StrictOneTime = strictFlag
	}

	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(cfg.Verbose)

	return nil
}

// registry returns the built-in converters plus those declared with
// --converter and --enum.
func registry() (*convert.Registry, error) {
	reg := convert.NewRegistry()

	for _, name := range converterList {
		if err := reg.Register(name, convert.Of(convert.Identity{})); err != nil {
			return nil, err
		}
	}

	for _, def := range enumFlags {
		name, members, ok := strings.Cut(def, "=")
		if !ok || name == "" || members == "" {
			return nil, fmt.Errorf("invalid --enum %q (expected name=Member1,Member2)", def)
		}

		if err := reg.RegisterEnum(convert.NamedEnum(name, strings.Split(members, ",")...)); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
