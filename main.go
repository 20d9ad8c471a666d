package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Template lookup
	templatesDir string

	// Target
	outDir string

	// Behavior
	dryRun bool

	// Report sinks
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string

	// Console
	quiet   bool
	noColor bool
)

// version is the application version, set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "dirforge",
	Short: "dirforge scaffolds directory trees from indented text templates.",
	Long: `dirforge turns an indentation-delimited outline into a directory tree.
Each line of a template names one folder; every 4 leading spaces nest it one
level deeper. Existing folders are reported and left untouched, so re-running
a template is always safe.`,
	Version: version,
}

var createCmd = &cobra.Command{
	Use:   "create <template>",
	Short: "Create the directory tree described by a template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		text, err := loadTemplate(templatesDir, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		forest := parseOutline(text)

		var outcomes []Outcome
		report := func(o Outcome) {
			outcomes = append(outcomes, o)
			if !quiet {
				fmt.Println(renderOutcome(o, !noColor))
			}
		}

		if dryRun {
			previewForest(forest, outDir, report)
		} else if err := materializeForest(forest, outDir, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		sum := summarize(name, outDir, outcomes)
		deliverReport(renderReport(outcomes, sum))

		if !quiet {
			msg := fmt.Sprintf("Done: created %d folder(s), %d already existed", sum.Created, sum.Existing)
			if dryRun {
				msg = fmt.Sprintf("Dry run: would create %d folder(s) under %s", sum.Created, sum.Root)
			}
			fmt.Println(renderDone(msg, !noColor))
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates available in the templates directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names, err := listTemplates(templatesDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Printf("No templates found in %s\n", templatesDir)
			return
		}
		for _, n := range names {
			fmt.Println(n)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "templates", "Directory containing .txt templates")
	viper.BindPFlag("templates_dir", rootCmd.PersistentFlags().Lookup("templates-dir"))
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	createCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Parent directory to create the tree under")
	viper.BindPFlag("out", createCmd.Flags().Lookup("out"))
	createCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be created without touching the filesystem")
	viper.BindPFlag("dry_run", createCmd.Flags().Lookup("dry-run"))
	createCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the run report to the specified file")
	viper.BindPFlag("file", createCmd.Flags().Lookup("file"))
	createCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the run report to the clipboard")
	viper.BindPFlag("clipboard", createCmd.Flags().Lookup("clipboard"))
	createCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Save the run report as a PDF")
	viper.BindPFlag("pdf", createCmd.Flags().Lookup("pdf"))
	createCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-path output")
	viper.BindPFlag("quiet", createCmd.Flags().Lookup("quiet"))

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)

	viper.SetDefault("templates_dir", "templates")
	viper.SetDefault("out", ".")
	viper.SetDefault("no_color", false)
	viper.SetDefault("quiet", false)
}

// initConfig reads in the config file and DIRFORGE_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	// Search config in home/.config/dirforge and the current directory.
	viper.AddConfigPath(filepath.Join(home, ".config", "dirforge"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DIRFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	// Flags win over config values; pull from viper only when the flag was
	// left at its default.
	if !rootCmd.PersistentFlags().Changed("templates-dir") {
		templatesDir = viper.GetString("templates_dir")
	}
	if !rootCmd.PersistentFlags().Changed("no-color") {
		noColor = viper.GetBool("no_color")
	}
	if !createCmd.Flags().Changed("out") {
		outDir = viper.GetString("out")
	}
	if !createCmd.Flags().Changed("quiet") {
		quiet = viper.GetBool("quiet")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
