package fixturestore

import (
	fx "github.com/C0D3-M4513R/unnamed-artnet-orion-vrsl-app/internal/fixture"
)

const vrsl = "VRSL"

var (
	vrslPans = fx.Choice([]uint64{
		fx.DegToMicroarcseconds(180),
		fx.DegToMicroarcseconds(360),
		fx.DegToMicroarcseconds(540),
	}, fx.DegToMicroarcseconds(180))

	vrslTilts = fx.Choice([]uint64{
		fx.DegToMicroarcseconds(180),
		fx.DegToMicroarcseconds(250),
		fx.DegToMicroarcseconds(270),
	}, fx.DegToMicroarcseconds(180))
)

func simple(kind fx.ActionKind) fx.Channel {
	return fx.SimpleChannel(fx.Simple(kind))
}

func rgb() []fx.Channel {
	return []fx.Channel{
		fx.SimpleChannel(fx.ColorIntensity(fx.RGBRed)),
		fx.SimpleChannel(fx.ColorIntensity(fx.RGBGreen)),
		fx.SimpleChannel(fx.ColorIntensity(fx.RGBBlue)),
	}
}

func strobe() fx.Channel {
	return fx.NewChannel(fx.MustSelection(
		fx.NewRange(0, 9, fx.Simple(fx.NoOp)),
		fx.NewRange(10, 255, fx.Simple(fx.Strobo)),
	))
}

// vrslColorChanger is the 13 channel layout shared by the VRSL par, bar and blinder.
func vrslColorChanger(model, fixtureType string) *fx.Fixture {
	channels := []fx.Channel{
		simple(fx.NoOp),
		simple(fx.NoOp),
		simple(fx.NoOp),
		simple(fx.NoOp),
		simple(fx.NoOp),
		simple(fx.IntensityMasterDimmer),
		strobe(),
	}
	channels = append(channels, rgb()...)
	channels = append(channels, simple(fx.NoOp), simple(fx.NoOp), simple(fx.NoOp))
	return fx.New(vrsl, model, fixtureType, channels)
}

func vrslMovingHead() *fx.Fixture {
	channels := []fx.Channel{
		fx.SimpleChannel(fx.Pan(vrslPans)),
		// fine channels are ignored by VRSL's smoothing
		fx.SimpleChannel(fx.PanFine(fx.Fixed(uint64(0)))),
		fx.SimpleChannel(fx.Tilt(vrslTilts)),
		fx.SimpleChannel(fx.TiltFine(fx.Fixed(uint64(0)))),
		simple(fx.BeamZoom),
		simple(fx.IntensityMasterDimmer),
		strobe(),
	}
	channels = append(channels, rgb()...)
	channels = append(channels,
		fx.NewChannel(fx.MustSelection(
			fx.NewRange(0, 9, fx.Simple(fx.NoOp)),
			fx.NewRange(10, 126, fx.Simple(fx.SpinLeft)),
			fx.NewRange(127, 255, fx.Simple(fx.SpinRight)),
		)),
		fx.NewChannel(fx.MustSelection(
			fx.NewRange(0, 42, fx.Simple(fx.GOBOSelection)),
			fx.NewRange(43, 85, fx.Simple(fx.GOBOSelection)),
			fx.NewRange(86, 127, fx.Simple(fx.GOBOSelection)),
			fx.NewRange(128, 212, fx.Simple(fx.GOBOSelection)),
			fx.NewRange(213, 255, fx.Simple(fx.GOBOSelection)),
		)),
		simple(fx.Speed),
	)
	return fx.New(vrsl, "Standard Mover Spotlight", "Moving Head", channels)
}

func vrslLaser() *fx.Fixture {
	channels := []fx.Channel{
		fx.SimpleChannel(fx.Pan(vrslPans)),
		fx.SimpleChannel(fx.Tilt(vrslTilts)),
		simple(fx.NoOp), // TODO: laser width
		simple(fx.NoOp), // flatness
		simple(fx.NoOp), // beam count
		simple(fx.SpinLeft),
		simple(fx.IntensityMasterDimmer),
	}
	channels = append(channels, rgb()...)
	channels = append(channels,
		simple(fx.NoOp), // beam thickness
		simple(fx.NoOp), // length
		simple(fx.Speed),
	)
	return fx.New(vrsl, "Standard Laser", "Laser", channels)
}

// Defaults returns the built-in fixture templates.
func Defaults() []*fx.Fixture {
	return []*fx.Fixture{
		vrslColorChanger("Standard Par Light", "Color Changer"),
		vrslColorChanger("Standard BarLight", "LED Bar (Pixels)"),
		vrslColorChanger("Standard Blinder", "Strobe"),
		vrslMovingHead(),
		vrslLaser(),
	}
}

// PopulateDefaults inserts the built-in templates at their catalog paths.
func (s *Store) PopulateDefaults() {
	for _, f := range Defaults() {
		s.Put(f)
	}
}
