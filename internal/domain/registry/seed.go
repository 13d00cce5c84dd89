package registry

import "github.com/okian/draftsensei/internal/domain/model"

// seedSynergy lists partner scores per hero. Lookups check both directions.
var seedSynergy = map[string]map[string]float64{
	// Tanks
	"Lolita":  {"Yin": 85, "Paquito": 80, "Hanabi": 75, "Chang'e": 82, "Floryn": 88, "Cecilion": 79, "Granger": 77},
	"Khufra":  {"Yin": 90, "Franco": 85, "Gusion": 87, "Fanny": 89, "Hanabi": 82, "Pharsa": 84, "Valentina": 86},
	"Franco":  {"Khufra": 85, "Yin": 88, "Paquito": 83, "Clint": 80, "Chang'e": 85, "Pharsa": 87, "Moskov": 81},
	"Johnson": {"Odette": 95, "Aurora": 92, "Vale": 88, "Cecilion": 87, "Chang'e": 90, "Pharsa": 89, "Zhask": 85},

	// Fighters
	"Yin":      {"Lolita": 85, "Khufra": 90, "Franco": 88, "Floryn": 82, "Estes": 80, "Mathilda": 84, "Rafaela": 79},
	"Paquito":  {"Lolita": 80, "Franco": 83, "Floryn": 85, "Estes": 87, "Mathilda": 82, "Angela": 84, "Diggie": 81},
	"Yu Zhong": {"Angela": 88, "Estes": 85, "Floryn": 87, "Mathilda": 83, "Rafaela": 80, "Diggie": 82, "Faramis": 79},

	// Assassins
	"Gusion": {"Khufra": 87, "Johnson": 85, "Diggie": 88, "Mathilda": 90, "Angela": 86, "Kaja": 89, "Franco": 84},
	"Fanny":  {"Khufra": 89, "Angela": 92, "Diggie": 87, "Mathilda": 88, "Kaja": 86, "Johnson": 85, "Franco": 83},
	"Ling":   {"Angela": 90, "Mathilda": 88, "Diggie": 85, "Kaja": 87, "Johnson": 84, "Khufra": 86, "Franco": 82},

	// Mages
	"Chang'e":   {"Lolita": 82, "Franco": 85, "Johnson": 90, "Atlas": 87, "Tigreal": 84, "Hylos": 83, "Grock": 81},
	"Pharsa":    {"Khufra": 84, "Franco": 87, "Johnson": 89, "Atlas": 86, "Tigreal": 85, "Grock": 83, "Hylos": 82},
	"Valentina": {"Khufra": 86, "Johnson": 88, "Atlas": 90, "Franco": 84, "Tigreal": 87, "Grock": 85, "Hylos": 86},
	"Cecilion":  {"Lolita": 79, "Johnson": 87, "Atlas": 85, "Franco": 82, "Tigreal": 84, "Grock": 83, "Hylos": 81},

	// Marksmen
	"Hanabi":  {"Lolita": 75, "Khufra": 82, "Franco": 78, "Johnson": 80, "Atlas": 84, "Tigreal": 81, "Grock": 79},
	"Granger": {"Lolita": 77, "Khufra": 83, "Franco": 80, "Johnson": 82, "Atlas": 85, "Tigreal": 83, "Grock": 81},
	"Clint":   {"Franco": 80, "Johnson": 84, "Atlas": 87, "Tigreal": 85, "Grock": 83, "Khufra": 82, "Lolita": 79},
	"Moskov":  {"Franco": 81, "Johnson": 83, "Atlas": 86, "Tigreal": 84, "Grock": 82, "Khufra": 85, "Lolita": 80},

	// Supports
	"Floryn":   {"Lolita": 88, "Yin": 82, "Paquito": 85, "Yu Zhong": 87, "Aulus": 83, "Lapu-Lapu": 84, "Silvanna": 86},
	"Estes":    {"Yin": 80, "Paquito": 87, "Yu Zhong": 85, "Aulus": 88, "Lapu-Lapu": 86, "Silvanna": 84, "Martis": 83},
	"Mathilda": {"Yin": 84, "Gusion": 90, "Fanny": 88, "Ling": 88, "Lancelot": 87, "Hayabusa": 85, "Harley": 86},
	"Angela":   {"Paquito": 84, "Yu Zhong": 88, "Fanny": 92, "Ling": 90, "Gusion": 86, "Lancelot": 89, "Hayabusa": 87},
}

// seedCounter lists directed counter strengths: attacker -> target -> score.
var seedCounter = map[string]map[string]float64{
	// Tanks
	"Khufra":  {"Fanny": 95, "Gusion": 88, "Ling": 90, "Lancelot": 85, "Hayabusa": 82, "Harley": 80, "Kagura": 83},
	"Franco":  {"Chang'e": 88, "Pharsa": 90, "Cecilion": 85, "Zhask": 87, "Valentina": 82, "Lylia": 84, "Lunox": 83},
	"Johnson": {"Hanabi": 87, "Granger": 85, "Clint": 88, "Moskov": 86, "Wanwan": 90, "Brody": 84, "Beatrix": 83},

	// Fighters
	"Yin":      {"Valentina": 92, "Chang'e": 88, "Pharsa": 85, "Cecilion": 87, "Zhask": 84, "Lylia": 86, "Lunox": 83},
	"Paquito":  {"Hanabi": 89, "Granger": 87, "Clint": 85, "Moskov": 88, "Wanwan": 86, "Brody": 90, "Beatrix": 84},
	"Yu Zhong": {"Lancelot": 88, "Gusion": 85, "Fanny": 82, "Ling": 84, "Hayabusa": 87, "Harley": 89, "Kagura": 86},

	// Assassins
	"Gusion": {"Chang'e": 90, "Pharsa": 88, "Cecilion": 92, "Zhask": 87, "Valentina": 85, "Lylia": 89, "Lunox": 86},
	"Fanny":  {"Hanabi": 85, "Granger": 88, "Clint": 90, "Moskov": 87, "Wanwan": 84, "Brody": 89, "Beatrix": 86},
	"Ling":   {"Cecilion": 88, "Chang'e": 86, "Pharsa": 90, "Zhask": 85, "Valentina": 87, "Lylia": 84, "Lunox": 89},

	// Mages
	"Valentina": {"Estes": 95, "Angela": 90, "Floryn": 88, "Mathilda": 85, "Rafaela": 87, "Diggie": 82, "Kaja": 84},
	"Chang'e":   {"Lolita": 85, "Franco": 82, "Johnson": 80, "Atlas": 88, "Tigreal": 86, "Grock": 84, "Hylos": 83},
	"Esmeralda": {"Chang'e": 92, "Pharsa": 90, "Cecilion": 88, "Valentina": 85, "Zhask": 87, "Lylia": 89, "Lunox": 86},

	// Supports
	"Diggie":   {"Khufra": 88, "Franco": 85, "Atlas": 90, "Tigreal": 87, "Johnson": 84, "Grock": 86, "Hylos": 83},
	"Mathilda": {"Yu Zhong": 85, "Paquito": 82, "Aulus": 88, "Lapu-Lapu": 86, "Silvanna": 84, "Martis": 87, "Jawhead": 83},
}

// seedRoleModifiers is the role x role compatibility table in percent.
// Same-role pairs have no entry and are left unscaled.
var seedRoleModifiers = map[model.Role]map[model.Role]float64{
	model.RoleTank:     {model.RoleFighter: 80, model.RoleAssassin: 75, model.RoleMage: 85, model.RoleMarksman: 90, model.RoleSupport: 70},
	model.RoleFighter:  {model.RoleTank: 80, model.RoleAssassin: 70, model.RoleMage: 75, model.RoleMarksman: 65, model.RoleSupport: 85},
	model.RoleAssassin: {model.RoleTank: 75, model.RoleFighter: 70, model.RoleMage: 60, model.RoleMarksman: 65, model.RoleSupport: 90},
	model.RoleMage:     {model.RoleTank: 85, model.RoleFighter: 75, model.RoleAssassin: 60, model.RoleMarksman: 70, model.RoleSupport: 80},
	model.RoleMarksman: {model.RoleTank: 90, model.RoleFighter: 65, model.RoleAssassin: 65, model.RoleMage: 70, model.RoleSupport: 85},
	model.RoleSupport:  {model.RoleTank: 70, model.RoleFighter: 85, model.RoleAssassin: 90, model.RoleMage: 80, model.RoleMarksman: 85},
}
