package main

import (
	"encoding/json"
	"fmt"

	"github.com/Purkaitrohit/House-Price-Prediction/config"
	"github.com/Purkaitrohit/House-Price-Prediction/constants"
	"github.com/Purkaitrohit/House-Price-Prediction/models"
	"github.com/Purkaitrohit/House-Price-Prediction/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	predictFeatures = models.DefaultHouseFeatures()
	predictJSON     bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate the price of one house from flags",
	Example: `  house-price predict --area 7420 --bedrooms 4 --bathrooms 2 --stories 3 \
    --airconditioning Required --furnishingstatus furnished --price-category "High Pricing"`,
	RunE: runPredict,
}

func init() {
	f := predictCmd.Flags()
	f.IntVar(&predictFeatures.Area, "area", predictFeatures.Area, "area in sq ft (1600-16000)")
	f.IntVar(&predictFeatures.Bedrooms, "bedrooms", predictFeatures.Bedrooms, "bedrooms (1-6)")
	f.IntVar(&predictFeatures.Bathrooms, "bathrooms", predictFeatures.Bathrooms, "bathrooms (1-4)")
	f.IntVar(&predictFeatures.Stories, "stories", predictFeatures.Stories, "stories (1-4)")
	f.StringVar(&predictFeatures.MainRoad, "mainroad", predictFeatures.MainRoad, "main road access (Required|Not Required)")
	f.StringVar(&predictFeatures.GuestRoom, "guestroom", predictFeatures.GuestRoom, "guest room (Required|Not Required)")
	f.StringVar(&predictFeatures.Basement, "basement", predictFeatures.Basement, "basement (Required|Not Required)")
	f.StringVar(&predictFeatures.HotWaterHeating, "hotwaterheating", predictFeatures.HotWaterHeating, "hot water heating (Required|Not Required)")
	f.StringVar(&predictFeatures.AirConditioning, "airconditioning", predictFeatures.AirConditioning, "air conditioning (Required|Not Required)")
	f.StringVar(&predictFeatures.Parking, "parking", predictFeatures.Parking, "parking (Required|Not Required)")
	f.StringVar(&predictFeatures.PrefArea, "prefarea", predictFeatures.PrefArea, "preferred area (Required|Not Required)")
	f.StringVar(&predictFeatures.FurnishingStatus, "furnishingstatus", predictFeatures.FurnishingStatus, "furnished|semi-furnished|unfurnished")
	f.StringVar(&predictFeatures.PriceCategory, "price-category", predictFeatures.PriceCategory, "Low Pricing|Medium Pricing|High Pricing")
	f.BoolVar(&predictJSON, "json", false, "print the full response as JSON")
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	predictor, _, closePredictor, err := newPredictor(cfg, zap.NewNop(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = closePredictor() }()

	svc := services.NewPredictService(predictor, nil, nil, zap.NewNop(), cfg.CurrencySymbol)
	res, err := svc.Predict(cmd.Context(), constants.SourceCLI, predictFeatures)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if predictJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = fmt.Fprintf(out, "💡 Estimated Price: %s\n", res.Formatted)
	return err
}
