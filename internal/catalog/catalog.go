// Package catalog holds the seed data for the admin treatment price list:
// every procedure the brokerage quotes, with its clinic base price in KRW and
// the standard commission percentage. The catalog is seeded into the database
// on first startup; subsequent admin edits are persisted there and take
// precedence over these defaults.
package catalog

import "github.com/medigo-care/go-leads-backend/internal/domain"

// Catalog categories as shown on the admin price list.
const (
	categoryLaser        = "Laser Treatment"
	categoryBotox        = "Botox"
	categoryFiller       = "Filler"
	categoryRegenerative = "Regenerative"
	categoryHIFU         = "HIFU/RF"
	categoryAdvanced     = "Advanced Treatment"
)

// defaultCommission is the standard brokerage margin applied to every
// procedure unless an admin overrides it.
const defaultCommission = 20

func item(id, name, nameKR, description, category string, basePrice int) domain.CatalogItem {
	it := domain.CatalogItem{
		ID:          id,
		Name:        name,
		NameKR:      nameKR,
		Description: description,
		Category:    category,
		BasePrice:   basePrice,
		Commission:  defaultCommission,
	}
	it.Recompute()
	return it
}

// Defaults returns the full seed price list. Final prices are derived from
// the base price and commission, never hand-entered.
func Defaults() []domain.CatalogItem {
	return []domain.CatalogItem{
		// Laser treatments
		item("pdt", "PDT 13% 1 Session", "PDT 13% 1회", "Photodynamic therapy for acne and skin renewal", categoryLaser, 150000),
		item("gold-ptt", "Gold PTT 1 Session", "골드PTT 1회", "Gold nanoparticle photothermal therapy", categoryLaser, 350000),
		item("fraxel-full", "Fraxel Full Face 1 Session", "프락셀 Full face 1회", "Fractional laser for full face treatment", categoryLaser, 500000),
		item("fraxel-full-pdrn", "Fraxel Full Face 1 Session + PDRN", "프락셀 Full face 1회 + PDRN", "Fraxel with regenerative PDRN therapy", categoryLaser, 600000),
		item("fraxel-butterfly", "Fraxel Butterfly Zone", "프락셀 나비존", "Fraxel laser treatment for cheek area", categoryLaser, 300000),
		item("fraxel-butterfly-pdrn", "Fraxel Butterfly Zone + PDRN", "프락셀 나비존 + PDRN", "Fraxel butterfly zone with regenerative therapy", categoryLaser, 400000),
		item("triple-toning", "Triple Toning 1 Session", "트리플 토닝 1회", "Advanced pigmentation treatment", categoryLaser, 250000),
		item("triple-toning-10", "Triple Toning 10 Sessions", "트리플 토닝 10회", "Complete pigmentation treatment package", categoryLaser, 2000000),

		// Botox
		item("domestic-wrinkle-botox", "Domestic Wrinkle Botox", "국산 주름 보톡스", "Korean-made botox for wrinkles", categoryBotox, 50000),
		item("imported-wrinkle-botox", "Imported (German) Wrinkle Botox", "수입(독일) 주름 보톡스", "Premium German botox for wrinkles", categoryBotox, 100000),
		item("domestic-jaw-botox", "Domestic Jaw Botox", "국산 턱 보톡스", "Korean-made botox for masseter slimming", categoryBotox, 70000),
		item("imported-jaw-botox", "Imported (German) Jaw Botox", "수입(독일) 턱 보톡스", "Premium German botox for jaw slimming", categoryBotox, 140000),
		item("skin-botox-full", "Skin Botox Full Face", "스킨보톡스 (Full face)", "Micro-botox for skin texture improvement", categoryBotox, 190000),
		item("skin-botox-eyes", "Skin Botox Eye Area", "스킨보톡스 (눈가)", "Micro-botox for eye area fine lines", categoryBotox, 70000),
		item("skin-botox-aqua", "Skin Botox + Aqua Injection", "스킨보톡스 + 물광주사", "Combined micro-botox and hydration therapy", categoryBotox, 290000),

		// Filler
		item("domestic-filler", "Domestic Filler 1cc", "국산 필러 1cc", "Korean-made hyaluronic acid filler", categoryFiller, 200000),
		item("imported-filler", "Imported Filler 1cc", "수입 필러 1cc", "Premium imported hyaluronic acid filler", categoryFiller, 400000),

		// Regenerative
		item("rejuran-1cc", "Rejuran/Juvelook/Exosome 1cc", "리쥬란/쥬베룩/엑소제 1cc", "Regenerative skin healing treatment", categoryRegenerative, 150000),
		item("rejuran-4cc", "Rejuran/Juvelook/Exosome 4cc", "리쥬란/쥬베룩/엑소제 4cc", "Intensive regenerative treatment", categoryRegenerative, 500000),
		item("rejuran-sleep-4cc", "Rejuran Sleep 4cc+", "(수면)리쥬란 4cc 이상", "Sleep anesthesia rejuran treatment", categoryRegenerative, 650000),
		item("rejuran-combo", "Rejuran + Aqua + Skin Botox", "리쥬란+물광+스킨보톡스", "Complete regenerative combo treatment", categoryRegenerative, 550000),
		item("exosome-combo", "Exosome + Aqua + Skin Botox", "엑소좀+물광+스킨보톡스", "Advanced exosome combination therapy", categoryRegenerative, 550000),

		// HIFU / RF
		item("oligio-300", "Oligio 300 Shots", "올리지오 300shot", "RF microneedling for skin tightening", categoryHIFU, 600000),
		item("oligio-600", "Oligio 600 Shots", "올리지오 600shot", "Intensive RF microneedling treatment", categoryHIFU, 1100000),
		item("eye-oligio", "Eye Oligio 100 Shots", "아이 올리지오 100shot", "RF treatment for eye area", categoryHIFU, 200000),
		item("ulthera-100", "Ulthera/Thermage 100 Shots", "울쎄라/써마지 100shot", "HIFU lifting treatment", categoryHIFU, 450000),
		item("ulthera-300", "Ulthera/Thermage 300 Shots", "울쎄라/써마지 300shot", "Comprehensive HIFU lifting treatment", categoryHIFU, 1300000),
		item("linear-firm-100", "Linear Firm 100 Shots", "리니어펌 100shot", "Linear HIFU body contouring", categoryHIFU, 250000),
		item("linear-firm-300", "Linear Firm 300 Shots", "리니어펌 300shot", "Intensive linear HIFU treatment", categoryHIFU, 750000),
		item("linear-firm-400", "Linear Firm 400 Shots", "리니어펌 400shot", "Maximum linear HIFU treatment", categoryHIFU, 900000),
		item("rf-lifting", "RF Lifting", "고주파 리프팅", "Radiofrequency skin tightening", categoryHIFU, 200000),

		// Advanced treatments
		item("accento-regen", "Accento 1 Session + Regenerative", "악센토 1회+재생 1회", "Advanced body contouring with regenerative therapy", categoryAdvanced, 500000),
		item("inmode-1", "InMode 1 (One Area)", "인모드1 (한부위)", "Fractional RF treatment for one area", categoryAdvanced, 200000),
		item("inmode-1-2", "InMode 1,2 (One Area)", "인모드1,2 (한부위)", "Combined InMode treatment for one area", categoryAdvanced, 300000),
		item("mts", "MTS (Microneedling)", "MTS", "Microneedling therapy system", categoryAdvanced, 250000),
		item("ldm-lifting", "LDM Water Drop Lifting", "LDM 물방울 리프팅", "Ultrasonic deep cleansing and lifting", categoryAdvanced, 300000),
		item("aqua-peel", "Aqua Peel 1 Session", "아쿠아필 1회", "Hydro-dermabrasion treatment", categoryAdvanced, 250000),
		item("ion-enzyme", "Ion Enzyme Care", "이온자임 관리", "Ion enzyme facial treatment", categoryAdvanced, 200000),
		item("collagen-egg", "Collagen Egg (Doctor)", "코레지 에그(원장님)", "Premium collagen treatment by doctor", categoryAdvanced, 400000),
		item("collagen-jar-glove", "Collagen Jar + Glove", "코레지 도자+글러브", "Collagen jar and glove treatment", categoryAdvanced, 400000),
	}
}
