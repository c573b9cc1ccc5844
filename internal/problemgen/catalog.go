package problemgen

// RatioInfo describes a ratio type for reference listings.
type RatioInfo struct {
	Type      RatioType
	Name      string
	Slug      string
	Formula   string
	Tolerance float64
	Precision int
	Bands     []Band

	// Realistic range the generator draws targets from.
	TargetMin float64
	TargetMax float64
}

// Catalog returns reference information for every ratio type, in display order.
func Catalog() []RatioInfo {
	infos := make([]RatioInfo, 0, len(AllRatioTypes))
	for _, t := range AllRatioTypes {
		infos = append(infos, Info(t))
	}
	return infos
}

// Info returns reference information for t.
func Info(t RatioType) RatioInfo {
	v := mustVariant(t)
	bands := make([]Band, len(v.bands))
	copy(bands, v.bands)
	return RatioInfo{
		Type:      t,
		Name:      v.name,
		Slug:      v.slug,
		Formula:   v.formula,
		Tolerance: v.tolerance,
		Precision: v.precision,
		Bands:     bands,
		TargetMin: v.targetMin,
		TargetMax: v.targetMax,
	}
}
