package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/isahakgaming-beep/thunderclient/internals/cmdlog"
)

// set by main (goreleaser fills these in)
var (
	Version = "dev"
	Commit  = ""
)

// TODO: this logger is not so great – also: it should not be global
var logger *cmdlog.Logger = cmdlog.New()

var (
	globalDir     = "/tmp"
	disableColors bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "thunder",
	Short: "Thunder Client at your service.",
	Long:  "Launch Minecraft Java with your Microsoft account",

	Example: `
  thunder login
  thunder launch --version 1.21
  thunder whoami`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	globalDir = filepath.Join(home, ".thunder")

	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&disableColors, "no-color", "", false, "disable color output")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		gchalk.SetLevel(0)
	}

	viper.SetDefault("auth_dir", filepath.Join(globalDir, "auth-cache"))
	viper.SetDefault("session_file", filepath.Join(globalDir, "session.json"))
	viper.SetDefault("game_dir", filepath.Join(globalDir, "minecraft"))
	viper.SetDefault("login_timeout", "150s")
	// the registered public client id used for the device-code flows
	viper.SetDefault("client_id", defaultClientID)

	viper.AddConfigPath(globalDir)
	viper.SetConfigName("config")

	viper.SetEnvPrefix("thunder")
	viper.AutomaticEnv() // read in environment variables that match

	// if a config file is found, read it in
	viper.ReadInConfig()
}
