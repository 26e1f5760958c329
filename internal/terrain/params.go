package terrain

// Params is the per-role configuration record of a layer. Foreground and
// background layers share the generator algorithm and differ only in
// these values.
type Params struct {
	// Height is the valid height band in rows. For a layer with a
	// reference the band is relative: the effective bounds are
	// [Min+ref.Height(), Max+ref.Height()].
	Height Range

	// Hold ranges: how many tiles the layer stays in a type after a
	// transition, drawn per new type.
	HoldSurface Range
	HoldBridge  Range
	HoldGap     Range

	// SlopeWait is the extra wait after a slope run before the next
	// slope may start, added to duration-1.
	SlopeWait Range

	// BridgeChance is the probability that a surface run ends in a
	// bridge rather than a gap.
	BridgeChance float64

	// DecorWait is the countdown between decoration attempts.
	DecorWait Range
}
