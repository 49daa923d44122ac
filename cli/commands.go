package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"pluscode/config"
	"pluscode/logging"
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger hclog.Logger
}

// NewRootCommand builds the pluscode command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "pluscode",
		Short:             "Encode, decode, shorten and recover Open Location Codes",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: pluscode.yaml in . or ./configs)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	encode := &cobra.Command{
		Use:   "encode",
		Short: "Encode a point as a full code",
		Args:  cobra.NoArgs,
		RunE:  a.encode,
	}
	encode.Flags().Float64("lat", 0, "Latitude in degrees (required)")
	encode.Flags().Float64("lon", 0, "Longitude in degrees (required)")
	encode.Flags().IntP("length", "l", 0, "Code length (default from config)")
	cobra.CheckErr(encode.MarkFlagRequired("lat"))
	cobra.CheckErr(encode.MarkFlagRequired("lon"))

	decode := &cobra.Command{
		Use:   "decode CODE",
		Short: "Decode a full code into its area",
		Args:  cobra.ExactArgs(1),
		RunE:  a.decode,
	}

	shorten := &cobra.Command{
		Use:   "shorten CODE",
		Short: "Shorten a full code relative to a reference point",
		Args:  cobra.ExactArgs(1),
		RunE:  a.shorten,
	}
	addReferenceFlags(shorten)

	recoverCmd := &cobra.Command{
		Use:   "recover CODE",
		Short: "Recover the nearest full code from a short code",
		Args:  cobra.ExactArgs(1),
		RunE:  a.recoverNearest,
	}
	addReferenceFlags(recoverCmd)

	validate := &cobra.Command{
		Use:   "validate CODE",
		Short: "Report whether a code is valid, short or full",
		Args:  cobra.ExactArgs(1),
		RunE:  a.validate,
	}

	alphabet := &cobra.Command{
		Use:   "alphabet",
		Short: "Print the code alphabet",
		Args:  cobra.NoArgs,
		RunE:  a.alphabet,
	}

	root.AddCommand(encode, decode, shorten, recoverCmd, validate, alphabet)
	return root
}

func addReferenceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("lat", 0, "Reference latitude (default from config)")
	cmd.Flags().Float64("lon", 0, "Reference longitude (default from config)")
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.cfg = cfg
	a.logger = logging.NewLogger("pluscode", level, cfg.Log.JSON, cmd.ErrOrStderr())
	return nil
}
