// Package tuning collects every heuristic threshold, cap and bonus used by the
// recommendation engine in one table, so each can be adjusted and tested on
// its own.
package tuning

import "github.com/okian/draftsensei/internal/domain/model"

// Tier pays Multiplier times the rating once the rating reaches Min.
type Tier struct {
	Min        int
	Multiplier float64
}

// Pay returns the payout of the first tier the rating reaches, or zero.
// Tiers are checked in order, highest first.
func Pay(rating int, tiers []Tier) float64 {
	for _, t := range tiers {
		if rating >= t.Min {
			return float64(rating) * t.Multiplier
		}
	}
	return 0
}

// PairRule awards Bonus when the hero's rating reaches Own and the partner's
// rating satisfies Partner.
type PairRule struct {
	Own     int
	Partner int
	Bonus   float64
}

// Gap is a team dimension that counts as missing below Floor. A hero fills
// it by rating at least Fill; Weight is the share the gap carries.
type Gap struct {
	Floor  int
	Weight float64
	Fill   int
}

// Counter holds the thresholds of the counter heuristics.
type Counter struct {
	// Enemies at or below SquishyTankiness are punished by anti_squishy.
	SquishyTankiness int
	AntiSquishy      []Tier
	// Enemies at or above ToughTankiness are punished by anti_tank.
	ToughTankiness int
	AntiTank       []Tier

	// Mobility or escape answers heavy crowd control.
	HeavyCC        int
	HeavyCCEscape  int
	HeavyCCBonus   float64
	MediumCC       int
	MediumCCEscape int
	MediumCCBonus  float64

	// Poke punishes short range enemies.
	ShortRange int
	Poke       []Tier

	// Engage punishes immobile enemies.
	LowMobility int
	Engage      []Tier

	// Burst punishes enemies whose shields plus regen stay at or below LowDefense.
	LowDefense int
	Burst      []Tier

	PerEnemyCap float64

	// Tabulated counter edges that produce reasons.
	HardCounterEdge float64
	CounterEdge     float64
	CounteredByEdge float64
}

// Synergy holds the thresholds of the synergy heuristics.
type Synergy struct {
	TankForCarry     PairRule // own tankiness, ally dps
	EngageForAOE     PairRule // own engage, ally aoe_damage
	CCForBurst       PairRule // own crowd_control, ally burst_damage
	PeelForSquishy   PairRule // own peel, ally tankiness at most Partner
	SustainForDamage PairRule // own team_heal or team_buff, ally sustained_damage
	DoubleEngage     PairRule // own engage, ally engage
	SharedMobility   PairRule // own mobility, ally mobility
	PerAllyCap       float64

	StrongPartnerEdge float64
}

// Composition holds team gap floors for the composition score.
type Composition struct {
	FrontlineMinAllies int
	Tankiness          Gap
	MagicDamage        Gap
	PhysicalDamage     Gap
	CrowdControl       Gap
	Engage             Gap
	Waveclear          Gap
	// Peel is only checked once team sustained damage reaches PeelTrigger.
	PeelTrigger int
	Peel        Gap

	PhysicalRoles    []model.Role
	RoleStackCount   int
	RoleStackPenalty float64
}

// Priority holds the blend of the pick priority score.
type Priority struct {
	CombatWeight        float64
	SurvivabilityWeight float64
	PowerWeight         float64
	CCWeight            float64
	Scale               float64

	EarlyGame float64
	MidGame   float64
	LateGame  float64
	Scaling   float64

	// PerfectPenalties scale the score when at least Min of the hero's
	// combat and survivability ratings are at the maximum. Highest first.
	PerfectPenalties []Tier
}

// LaneFit scores by position in the lane affinity list.
type LaneFit struct {
	ByRank   []float64
	Listed   float64
	Unlisted float64

	PrimaryReason     float64
	ViableReason      float64
	SituationalReason float64
	UnsuitedReason    float64
}

// Reasons holds the thresholds for summary justification strings.
type Reasons struct {
	Counter     float64
	Synergy     float64
	Composition float64
	Priority    float64
	TopTier     float64
	Max         int
}

// Weighting holds the base distribution and the adaptive adjustments.
type Weighting struct {
	Base model.Weights

	LateDraftPicks int
	LateDraft      model.Weights

	EnemyPatternPicks int
	EnemyPattern      model.Weights

	MissingLane model.Weights

	BanPressureBans int
	BanPressure     model.Weights

	WinConditionDPS   int
	WinConditionPower int
	WinCondition      model.Weights
}

// LaneProfile is how much a lane typically contributes to a team dimension.
type LaneProfile struct {
	Tankiness      float64
	PhysicalDamage float64
	MagicDamage    float64
}

// LaneSelection holds the lane selector constants.
type LaneSelection struct {
	FirstPickMaxPicks int
	ContestedLanes    []model.Lane
	FirstPickLane     model.Lane
	FallbackLane      model.Lane

	ThreatWeight     float64
	NeedWeight       float64
	ImportanceWeight float64
	Importance       map[model.Lane]float64

	UncontestedThreat float64
	ThreatDPS         float64
	ThreatBurst       float64
	ThreatLateGame    float64

	NoAllyNeed          float64
	RoleDamage          int
	ContributionMin     float64
	TankinessFloor      int
	TankinessNeed       float64
	MagicDamageFloor    int
	MagicDamageNeed     float64
	PhysicalDamageFloor int
	PhysicalDamageNeed  float64
	Profiles            map[model.Lane]LaneProfile

	ThreatNamesShown int
	FillNoteAllies   int
}

// DiversityTier applies Penalty once a hero appeared in at least Min prior results.
type DiversityTier struct {
	Min     int
	Penalty float64
}

// Bans holds the ban suggestion weights.
type Bans struct {
	EdgeWeight      float64
	PriorityWeight  float64
	HeuristicWeight float64
	HardCounterEdge float64
}

// Analysis holds the role priorities reported by draft analysis.
type Analysis struct {
	TankPriority     int
	SupportPriority  int
	SupportMinAllies int
	CarryPriority    int
	DamagePriority   int
	// Roles held by at least AvoidCount allies are reported as ones to avoid.
	AvoidCount int
}

// Tuning is the complete heuristic table.
type Tuning struct {
	NeutralScore float64
	MaxScore     float64
	ResultSize   int

	Counter     Counter
	Synergy     Synergy
	Composition Composition
	Priority    Priority
	LaneFit     LaneFit
	Reasons     Reasons
	Weighting   Weighting
	Lane        LaneSelection
	Diversity   []DiversityTier
	Bans        Bans
	Analysis    Analysis
}

// Default returns the stock table.
func Default() Tuning {
	return Tuning{
		NeutralScore: 60,
		MaxScore:     100,
		ResultSize:   5,

		Counter: Counter{
			SquishyTankiness: 2,
			AntiSquishy:      []Tier{{Min: 4, Multiplier: 5}, {Min: 3, Multiplier: 3}},
			ToughTankiness:   4,
			AntiTank:         []Tier{{Min: 4, Multiplier: 5}, {Min: 3, Multiplier: 3}},
			HeavyCC:          4,
			HeavyCCEscape:    4,
			HeavyCCBonus:     20,
			MediumCC:         3,
			MediumCCEscape:   3,
			MediumCCBonus:    10,
			ShortRange:       2,
			Poke:             []Tier{{Min: 4, Multiplier: 4}, {Min: 3, Multiplier: 2}},
			LowMobility:      2,
			Engage:           []Tier{{Min: 4, Multiplier: 4}},
			LowDefense:       3,
			Burst:            []Tier{{Min: 4, Multiplier: 4}, {Min: 3, Multiplier: 2}},
			PerEnemyCap:      100,
			HardCounterEdge:  85,
			CounterEdge:      70,
			CounteredByEdge:  85,
		},

		Synergy: Synergy{
			TankForCarry:      PairRule{Own: 4, Partner: 4, Bonus: 20},
			EngageForAOE:      PairRule{Own: 4, Partner: 4, Bonus: 25},
			CCForBurst:        PairRule{Own: 3, Partner: 4, Bonus: 20},
			PeelForSquishy:    PairRule{Own: 3, Partner: 2, Bonus: 18},
			SustainForDamage:  PairRule{Own: 3, Partner: 4, Bonus: 22},
			DoubleEngage:      PairRule{Own: 4, Partner: 4, Bonus: 15},
			SharedMobility:    PairRule{Own: 4, Partner: 4, Bonus: 12},
			PerAllyCap:        100,
			StrongPartnerEdge: 85,
		},

		Composition: Composition{
			FrontlineMinAllies: 2,
			Tankiness:          Gap{Floor: 8, Weight: 15, Fill: 4},
			MagicDamage:        Gap{Floor: 10, Weight: 15},
			PhysicalDamage:     Gap{Floor: 10, Weight: 15},
			CrowdControl:       Gap{Floor: 5, Weight: 10, Fill: 3},
			Engage:             Gap{Floor: 8, Weight: 12, Fill: 4},
			Waveclear:          Gap{Floor: 8, Weight: 8, Fill: 4},
			PeelTrigger:        12,
			Peel:               Gap{Floor: 6, Weight: 10, Fill: 3},
			PhysicalRoles:      []model.Role{model.RoleMarksman, model.RoleAssassin, model.RoleFighter},
			RoleStackCount:     2,
			RoleStackPenalty:   15,
		},

		Priority: Priority{
			CombatWeight:        0.35,
			SurvivabilityWeight: 0.25,
			PowerWeight:         0.30,
			CCWeight:            0.10,
			Scale:               20,
			EarlyGame:           0.20,
			MidGame:             0.35,
			LateGame:            0.35,
			Scaling:             0.10,
			PerfectPenalties:    []Tier{{Min: 5, Multiplier: 0.85}, {Min: 4, Multiplier: 0.90}, {Min: 3, Multiplier: 0.95}},
		},

		LaneFit: LaneFit{
			ByRank:            []float64{100, 75, 50},
			Listed:            30,
			Unlisted:          5,
			PrimaryReason:     100,
			ViableReason:      75,
			SituationalReason: 50,
			UnsuitedReason:    30,
		},

		Reasons: Reasons{
			Counter:     70,
			Synergy:     70,
			Composition: 70,
			Priority:    75,
			TopTier:     80,
			Max:         5,
		},

		Weighting: Weighting{
			Base:              model.Weights{Counter: 0.35, Synergy: 0.25, Composition: 0.20, Priority: 0.15, RoleFit: 0.05},
			LateDraftPicks:    4,
			LateDraft:         model.Weights{Composition: 0.10, Synergy: 0.10, Priority: -0.10},
			EnemyPatternPicks: 3,
			EnemyPattern:      model.Weights{Counter: 0.15, Synergy: -0.10},
			MissingLane:       model.Weights{RoleFit: 0.15, Priority: -0.05},
			BanPressureBans:   6,
			BanPressure:       model.Weights{Priority: 0.05},
			WinConditionDPS:   4,
			WinConditionPower: 4,
			WinCondition:      model.Weights{Synergy: 0.10, Counter: -0.05},
		},

		Lane: LaneSelection{
			FirstPickMaxPicks: 4,
			ContestedLanes:    []model.Lane{model.LaneJungle, model.LaneMid},
			FirstPickLane:     model.LaneJungle,
			FallbackLane:      model.LaneMid,
			ThreatWeight:      0.40,
			NeedWeight:        0.35,
			ImportanceWeight:  0.25,
			Importance: map[model.Lane]float64{
				model.LaneJungle: 100, model.LaneMid: 90, model.LaneEXP: 80, model.LaneGold: 75, model.LaneRoam: 70,
			},
			UncontestedThreat:   0.3,
			ThreatDPS:           0.4,
			ThreatBurst:         0.3,
			ThreatLateGame:      0.3,
			NoAllyNeed:          0.5,
			RoleDamage:          5,
			ContributionMin:     0.5,
			TankinessFloor:      8,
			TankinessNeed:       0.4,
			MagicDamageFloor:    5,
			MagicDamageNeed:     0.3,
			PhysicalDamageFloor: 10,
			PhysicalDamageNeed:  0.3,
			Profiles: map[model.Lane]LaneProfile{
				model.LaneEXP:    {Tankiness: 0.8, PhysicalDamage: 0.6},
				model.LaneJungle: {PhysicalDamage: 0.9},
				model.LaneMid:    {MagicDamage: 0.9},
				model.LaneGold:   {PhysicalDamage: 0.9},
				model.LaneRoam:   {Tankiness: 0.9},
			},
			ThreatNamesShown: 2,
			FillNoteAllies:   2,
		},

		Diversity: []DiversityTier{{Min: 5, Penalty: 0.15}, {Min: 3, Penalty: 0.10}, {Min: 1, Penalty: 0.05}},

		Bans: Bans{
			EdgeWeight:      0.4,
			PriorityWeight:  0.3,
			HeuristicWeight: 0.2,
			HardCounterEdge: 85,
		},

		Analysis: Analysis{
			TankPriority:     3,
			SupportPriority:  2,
			SupportMinAllies: 3,
			CarryPriority:    2,
			DamagePriority:   2,
			AvoidCount:       2,
		},
	}
}

// DiversityPenalty returns the penalty for a hero seen in prior results count times.
func (t Tuning) DiversityPenalty(count int) float64 {
	for _, tier := range t.Diversity {
		if count >= tier.Min {
			return tier.Penalty
		}
	}
	return 0
}
