// Command geocore-places logs into a Geocore project with the default
// user and lists the places nearest to a given coordinate.
package main

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/jatiwn/geocore-tutorial-1/geocore"
	"github.com/spf13/cobra"
)

func main() {
	var (
		baseURL   string
		projectID string
		deviceID  string
		lat       float64
		lon       float64
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "geocore-places",
		Short: "List the Geocore places nearest to a coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetHandler(cli.New(os.Stderr))
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return run(cmd.Context(), &geocore.Config{
				BaseURL:   baseURL,
				ProjectID: projectID,
				DeviceID:  deviceID,
				Logger:    log.Log,
				UserAgent: "geocore-places/0.1.0",
			}, lat, lon)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&baseURL, "base-url", "https://dev1.geocore.jp/api", "Geocore service endpoint")
	flags.StringVar(&projectID, "project-id", "", "Project ID scoping all API calls")
	flags.StringVar(&deviceID, "device-id", "", "Stable device identifier for the default user")
	flags.Float64Var(&lat, "lat", 35.65858, "Latitude of the search center")
	flags.Float64Var(&lon, "lon", 139.745433, "Longitude of the search center")
	flags.BoolVar(&verbose, "verbose", false, "Emit debug messages")
	_ = cmd.MarkFlagRequired("project-id")

	if err := cmd.Execute(); err != nil {
		log.WithError(err).Fatal("geocore-places failed")
	}
}

func run(ctx context.Context, config *geocore.Config, lat, lon float64) error {
	client := geocore.NewClient(config)

	if _, err := client.LoginWithDefaultUser(ctx); err != nil {
		return err
	}
	log.Infof("logged in as %s", client.DefaultUserID())

	places, err := client.PlacesNearest(ctx, lat, lon)
	if err != nil {
		return err
	}
	for _, place := range places {
		log.Infof("%s (%v, %v)",
			place.Name.UnwrapOr("<unnamed>"),
			place.Point.Latitude.UnwrapOr(0),
			place.Point.Longitude.UnwrapOr(0))
	}
	return nil
}
