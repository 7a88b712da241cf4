package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/logger"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/sheet"
)

const (
	PromptSave    = "Save to sheet"
	PromptDiscard = "Discard"
)

var intakeCmd = &cobra.Command{
	Use:   "intake",
	Short: "Run the interactive intake conversation in the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		intake(cmd)
	},
}

func init() {
	rootCmd.AddCommand(intakeCmd)
}

// intake drives the conversation engine over a terminal prompt loop: one
// question per missing field until the profile is complete.
func intake(_ *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	c, err := buildCore(ctx, config, zlog)
	if err != nil {
		zlog.Fatal("building extraction core", zap.Error(err))
	}
	if c.modelExtra == nil {
		zlog.Fatal("the intake conversation needs the ai section enabled and a gemini api key")
	}

	const sessionID = "terminal"
	turn := c.engine.Start(sessionID)

	for !turn.Completed {
		answerPrompt := promptui.Prompt{Label: turn.Message}
		answer, err := answerPrompt.Run()
		if err != nil {
			zlog.Info("exiting", zap.Error(err))
			return
		}

		turn = c.engine.Respond(ctx, sessionID, answer)
	}

	fmt.Println(turn.Message)
	if turn.Profile == nil {
		return
	}
	fmt.Println(turn.Profile.JSON())

	savePrompt := promptui.Select{
		Label: "Profile complete",
		Items: []string{PromptSave, PromptDiscard},
	}
	_, action, err := savePrompt.Run()
	if err != nil || action != PromptSave {
		return
	}

	store := sheet.NewStore(config.SheetFile)
	if err := store.Append(*turn.Profile); err != nil {
		zlog.Fatal("saving applicant", zap.Error(err))
	}
	zlog.Info("applicant saved", zap.String("file", config.SheetFile))
}
