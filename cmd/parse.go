package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/docs"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/logger"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Extract an applicant profile from free text or a resume file",
	Long: `Extract an applicant profile and print it as JSON.

Input is either a resume file (.pdf, .docx, .txt) given as an argument,
the --text flag, or stdin when neither is provided.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("text", "t", "", "free text to parse instead of a file")
}

func parse(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	text, err := readInput(cmd, args)
	if err != nil {
		zlog.Fatal("reading input", zap.Error(err))
	}

	c, err := buildCore(ctx, config, zlog)
	if err != nil {
		zlog.Fatal("building extraction core", zap.Error(err))
	}

	p := c.pipeline.Extract(ctx, text)
	fmt.Println(p.JSON())
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if text := cmd.Flag("text").Value.String(); text != "" {
		return text, nil
	}

	if len(args) == 1 {
		return docs.ExtractText(args[0])
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
