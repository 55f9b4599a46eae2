package recommend

// Procedure is one named treatment inside a package, with its customer price
// in Korean won and the clinic grade label (S/A/B/C).
type Procedure struct {
	Name        string `json:"name"`
	Grade       string `json:"grade"`
	Description string `json:"description"`
	PriceKRW    int    `json:"priceKrw"`
}

// TreatmentPackage is a fixed bundle of procedures offered for one category.
// TotalPriceKRW is part of the published price list, not derived at runtime;
// the package data keeps it equal to the sum of the procedure prices.
type TreatmentPackage struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Category      Category    `json:"category"`
	Procedures    []Procedure `json:"procedures"`
	TotalPriceKRW int         `json:"totalPriceKrw"`
	Duration      string      `json:"duration"`
}

// packages holds the four published treatment packages, keyed by category.
// Prices mirror the brokerage price list (base price + 20% commission).
var packages = map[Category]TreatmentPackage{
	CategoryLifting: {
		ID:          "type1-lifting",
		Title:       "Complete Anti-Aging & Facial Rejuvenation",
		Description: "Ultherapy + Botox + HA Filler + Skin Booster",
		Category:    CategoryLifting,
		Procedures: []Procedure{
			{Name: "Ulthera/Thermage 300 Shots", Grade: "A", Description: "Dermal & SMAS layer lifting (MFU-V ultrasound)", PriceKRW: 1560000},
			{Name: "Imported (German) Wrinkle Botox", Grade: "S", Description: "Forehead & eye wrinkle removal", PriceKRW: 120000},
			{Name: "Imported Filler 1cc", Grade: "A", Description: "Nasolabial & cheek volume enhancement", PriceKRW: 480000},
			{Name: "Skin Botox + Aqua Injection", Grade: "A", Description: "Moisture & skin texture improvement", PriceKRW: 348000},
			{Name: "Rejuran/Juvelook/Exosome 4cc", Grade: "A", Description: "Deep dryness, thin skin, overall regeneration", PriceKRW: 600000},
		},
		TotalPriceKRW: 3108000,
		Duration:      "Ulthera → (after 1 week) Botox + Filler + Skin Botox",
	},
	CategoryTexture: {
		ID:          "type2-pores",
		Title:       "Advanced Pore & Scar Treatment",
		Description: "Fraxel + Skin Botox + Exosome Skin Booster + LDM",
		Category:    CategoryTexture,
		Procedures: []Procedure{
			{Name: "Fraxel Full Face 1 Session + PDRN", Grade: "B", Description: "Fractional laser for deep remodeling of acne scars and pores", PriceKRW: 720000},
			{Name: "Skin Botox Full Face", Grade: "S", Description: "Tightens pores and smooths fine wrinkles", PriceKRW: 228000},
			{Name: "Exosome + Aqua + Skin Botox", Grade: "A", Description: "Boosts regeneration, prevents post-inflammatory pigmentation", PriceKRW: 660000},
			{Name: "LDM Water Drop Lifting", Grade: "A", Description: "Enhances healing and skin recovery", PriceKRW: 360000},
		},
		TotalPriceKRW: 1968000,
		Duration:      "Fraxel → (3-5 days later) Skin Botox + Exosome Booster",
	},
	CategoryPigmentation: {
		ID:          "type3-pigmentation",
		Title:       "Brightening & Pigmentation Correction",
		Description: "Laser Toning + Dark Spot Removal + LDM + Rejuran",
		Category:    CategoryPigmentation,
		Procedures: []Procedure{
			{Name: "Triple Toning 1 Session", Grade: "S", Description: "IPL or Pico Laser for melanin breakdown", PriceKRW: 300000},
			{Name: "LDM Water Drop Lifting", Grade: "A", Description: "Ultrasound tech for anti-inflammation & deep tissue repair", PriceKRW: 360000},
			{Name: "Rejuran + Aqua + Skin Botox", Grade: "A", Description: "Collagen regeneration, anti-aging", PriceKRW: 660000},
			{Name: "PDT 13% 1 Session", Grade: "B", Description: "Targets uneven tone, diffuse pigmentation", PriceKRW: 180000},
		},
		TotalPriceKRW: 1500000,
		Duration:      "Toning + Pigment Removal → (after 1 week) Rejuran + LDM",
	},
	CategoryContouring: {
		ID:          "type4-vline",
		Title:       "V-Line Sculpting & Facial Contouring",
		Description: "Square Jaw Botox + InMode FX + Oligio + Chin Filler",
		Category:    CategoryContouring,
		Procedures: []Procedure{
			{Name: "Imported (German) Jaw Botox", Grade: "S", Description: "Masseter muscle slimming", PriceKRW: 168000},
			{Name: "InMode 1,2 (One Area)", Grade: "B", Description: "RF technology for fat melting and lifting", PriceKRW: 360000},
			{Name: "Oligio 300 Shots", Grade: "A", Description: "Firming and regeneration", PriceKRW: 720000},
			{Name: "Imported Filler 1cc", Grade: "A", Description: "Enhances jawline definition", PriceKRW: 480000},
		},
		TotalPriceKRW: 1728000,
		Duration:      "InMode + Botox → (after 1 week) Chin Filler + Oligio",
	},
}

// PackageFor returns the fixed package for a category. Unknown categories map
// to the lifting package, matching the scorer's default bias.
func PackageFor(c Category) TreatmentPackage {
	if p, ok := packages[c]; ok {
		return p
	}
	return packages[CategoryLifting]
}

// Packages returns the four published packages in category order.
func Packages() []TreatmentPackage {
	out := make([]TreatmentPackage, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		out = append(out, packages[c])
	}
	return out
}
