package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ahsanulk27/collab-flow/internal/network"
)

var token string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "collabflow-client",
		Short: "CollabFlow terminal chat client",
		Run:   runClient,
	}

	cobra.OnInitialize(loadConfig)

	rootCmd.Flags().StringVarP(&token, "token", "t", "", "bearer token issued by the auth service (required)")
	rootCmd.MarkFlagRequired("token")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() {
	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.url", "ws://localhost:8080/ws")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using defaults")
	}
}

func runClient(cmd *cobra.Command, args []string) {
	serverURL := viper.GetString("server.url")

	netClient := network.NewClient()

	if err := netClient.Connect(serverURL, token); err != nil {
		log.Fatalf("Failed to connect to server: %v", err)
	}

	// Blocks forever; the read pump exits the process when the
	// connection drops.
	netClient.HandleStdin()
}
