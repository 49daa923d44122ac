package cli

import (
	"encoding/json"

	"github.com/mmcloughlin/geohash"
	"github.com/spf13/cobra"

	"pluscode/models"
	"pluscode/olc"
)

func (a *app) encode(cmd *cobra.Command, _ []string) error {
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")
	length, _ := cmd.Flags().GetInt("length")
	if !cmd.Flags().Changed("length") {
		length = a.cfg.Code.Length
	}

	a.logger.Debug("encoding", "latitude", lat, "longitude", lon, "length", length)
	code, err := olc.Encode(lat, lon, length)
	if err != nil {
		a.logger.Error("encode failed", "error", err)
		return err
	}
	return writeJSON(cmd, models.CodeResult{Code: code})
}

func (a *app) decode(cmd *cobra.Command, args []string) error {
	code := args[0]
	a.logger.Debug("decoding", "code", code)

	area, err := olc.Decode(code)
	if err != nil {
		a.logger.Error("decode failed", "code", code, "error", err)
		return err
	}

	result := models.NewArea(code, area)
	result.Geohash = geohash.EncodeWithPrecision(result.LatitudeCenter, result.LongitudeCenter, a.cfg.Geohash.Precision)
	return writeJSON(cmd, result)
}

func (a *app) shorten(cmd *cobra.Command, args []string) error {
	code := args[0]
	lat, lon := a.reference(cmd)
	a.logger.Debug("shortening", "code", code, "latitude", lat, "longitude", lon)

	short, err := olc.Shorten(code, lat, lon)
	if err != nil {
		a.logger.Error("shorten failed", "code", code, "error", err)
		return err
	}
	return writeJSON(cmd, models.CodeResult{Code: short})
}

func (a *app) recoverNearest(cmd *cobra.Command, args []string) error {
	code := args[0]
	lat, lon := a.reference(cmd)
	a.logger.Debug("recovering", "code", code, "latitude", lat, "longitude", lon)

	full, err := olc.RecoverNearest(code, lat, lon)
	if err != nil {
		a.logger.Error("recover failed", "code", code, "error", err)
		return err
	}
	return writeJSON(cmd, models.CodeResult{Code: full})
}

func (a *app) validate(cmd *cobra.Command, args []string) error {
	code := args[0]
	return writeJSON(cmd, models.Validity{
		Code:  code,
		Valid: olc.IsValid(code),
		Short: olc.IsShort(code),
		Full:  olc.IsFull(code),
	})
}

func (a *app) alphabet(cmd *cobra.Command, _ []string) error {
	return writeJSON(cmd, models.Alphabet{Alphabet: olc.Alphabet()})
}

// reference returns the --lat/--lon flags, falling back to the configured
// reference point for any flag left unset.
func (a *app) reference(cmd *cobra.Command) (float64, float64) {
	lat, lon := a.cfg.Reference.Latitude, a.cfg.Reference.Longitude
	if cmd.Flags().Changed("lat") {
		lat, _ = cmd.Flags().GetFloat64("lat")
	}
	if cmd.Flags().Changed("lon") {
		lon, _ = cmd.Flags().GetFloat64("lon")
	}
	return lat, lon
}

func writeJSON(cmd *cobra.Command, v any) error {
	return json.NewEncoder(cmd.OutOrStdout()).Encode(v)
}
