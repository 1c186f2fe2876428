package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/Purkaitrohit/House-Price-Prediction/config"
	"github.com/Purkaitrohit/House-Price-Prediction/constants"
	"github.com/Purkaitrohit/House-Price-Prediction/utils"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the prediction history API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		switch constants.RoleEnum(tokenRole) {
		case constants.RoleAdmin, constants.RoleAnalyst:
		default:
			return fmt.Errorf("unknown role %q", tokenRole)
		}
		if tokenSubject == "" {
			return errors.New("--subject is required")
		}
		if tokenTTL <= 0 {
			return fmt.Errorf("--ttl must be positive, got %s", tokenTTL)
		}

		token, err := utils.GenerateJWT([]byte(cfg.JWTSecret), utils.JWTUser{Subject: tokenSubject, Role: tokenRole}, tokenTTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "who the token is issued to")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(constants.RoleAnalyst), "admin or analyst")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
