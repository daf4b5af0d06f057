package questlogix

// Achievement IDs granted by direct gameplay events rather than by a stat
// threshold.
const (
	AchievementFlawlessVictory = "flawless_victory"
	AchievementSurvivor        = "survivor"
)

// defaultAchievementDefinitions returns the built-in achievement catalog in
// presentation order. Entries without a Condition are unlocked only through
// direct events or, for the meta achievement, by finishing the rest of the
// catalog.
func defaultAchievementDefinitions() []*AchievementDefinition {
	return []*AchievementDefinition{

		// Combat

		{
			Id:               "first_blood",
			Name:             "First Blood",
			Description:      "Slay your first monster.",
			Category:         CategoryCombat,
			Tier:             TierBronze,
			PointValue:       10,
			GoldReward:       25,
			ExperienceReward: 50,
			UnlockMessage:    "The hunt begins.",
			Condition:        func(p *PlayerState) bool { return p.Statistics.MonstersKilled >= 1 },
		},
		{
			Id:               "monster_slayer_10",
			Name:             "Monster Slayer",
			Description:      "Slay 10 monsters.",
			Category:         CategoryCombat,
			Tier:             TierBronze,
			PointValue:       10,
			GoldReward:       50,
			ExperienceReward: 100,
			Condition:        func(p *PlayerState) bool { return p.Statistics.MonstersKilled >= 10 },
		},
		{
			Id:               "monster_slayer_100",
			Name:             "Seasoned Slayer",
			Description:      "Slay 100 monsters.",
			Category:         CategoryCombat,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       250,
			ExperienceReward: 500,
			Condition:        func(p *PlayerState) bool { return p.Statistics.MonstersKilled >= 100 },
		},
		{
			Id:               "monster_slayer_500",
			Name:             "Scourge of Monsters",
			Description:      "Slay 500 monsters.",
			Category:         CategoryCombat,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       1000,
			ExperienceReward: 2000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.MonstersKilled >= 500 },
		},
		{
			Id:               "boss_breaker",
			Name:             "Boss Breaker",
			Description:      "Defeat your first boss.",
			Category:         CategoryCombat,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       300,
			ExperienceReward: 600,
			Condition:        func(p *PlayerState) bool { return p.Statistics.BossesKilled >= 1 },
		},
		{
			Id:               "boss_bane",
			Name:             "Bane of Bosses",
			Description:      "Defeat 10 bosses.",
			Category:         CategoryCombat,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       1200,
			ExperienceReward: 2400,
			Condition:        func(p *PlayerState) bool { return p.Statistics.BossesKilled >= 10 },
		},
		{
			Id:               "legend_hunter",
			Name:             "Legend Hunter",
			Description:      "Slay 5 unique monsters.",
			Category:         CategoryCombat,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       1500,
			ExperienceReward: 3000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.UniquesKilled >= 5 },
		},
		{
			Id:               "critical_eye",
			Name:             "Critical Eye",
			Description:      "Land 100 critical hits.",
			Category:         CategoryCombat,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       200,
			ExperienceReward: 400,
			Condition:        func(p *PlayerState) bool { return p.Statistics.CriticalHits >= 100 },
		},
		{
			Id:               "juggernaut",
			Name:             "Juggernaut",
			Description:      "Deal 100,000 total damage.",
			Category:         CategoryCombat,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       800,
			ExperienceReward: 1600,
			Condition:        func(p *PlayerState) bool { return p.Statistics.DamageDealt >= 100000 },
		},
		{
			Id:               "duelist",
			Name:             "Duelist",
			Description:      "Defeat another player.",
			Category:         CategoryCombat,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       150,
			ExperienceReward: 300,
			Condition:        func(p *PlayerState) bool { return p.Statistics.PlayerKills >= 1 },
		},
		{
			Id:               AchievementFlawlessVictory,
			Name:             "Flawless Victory",
			Description:      "Win a fight without taking a single hit.",
			Category:         CategoryCombat,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       500,
			ExperienceReward: 1000,
			UnlockMessage:    "Untouchable.",
		},
		{
			Id:               AchievementSurvivor,
			Name:             "Survivor",
			Description:      "Win a fight with less than 10% of your health remaining.",
			Category:         CategoryCombat,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       500,
			ExperienceReward: 1000,
			UnlockMessage:    "Against all odds.",
		},

		// Exploration

		{
			Id:               "delver",
			Name:             "Delver",
			Description:      "Reach dungeon level 5.",
			Category:         CategoryExploration,
			Tier:             TierBronze,
			PointValue:       10,
			GoldReward:       50,
			ExperienceReward: 100,
			Condition:        func(p *PlayerState) bool { return p.Statistics.DeepestDungeonLevel >= 5 },
		},
		{
			Id:               "deep_delver",
			Name:             "Deep Delver",
			Description:      "Reach dungeon level 15.",
			Category:         CategoryExploration,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       250,
			ExperienceReward: 500,
			Condition:        func(p *PlayerState) bool { return p.Statistics.DeepestDungeonLevel >= 15 },
		},
		{
			Id:               "abyss_walker",
			Name:             "Abyss Walker",
			Description:      "Reach dungeon level 30.",
			Category:         CategoryExploration,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       1000,
			ExperienceReward: 2000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.DeepestDungeonLevel >= 30 },
		},
		{
			Id:               "treasure_hunter",
			Name:             "Treasure Hunter",
			Description:      "Open 10 chests.",
			Category:         CategoryExploration,
			Tier:             TierBronze,
			PointValue:       10,
			GoldReward:       100,
			ExperienceReward: 100,
			Condition:        func(p *PlayerState) bool { return p.Statistics.ChestsOpened >= 10 },
		},
		{
			Id:               "vault_cracker",
			Name:             "Vault Cracker",
			Description:      "Open 100 chests.",
			Category:         CategoryExploration,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       500,
			ExperienceReward: 500,
			Condition:        func(p *PlayerState) bool { return p.Statistics.ChestsOpened >= 100 },
		},
		{
			Id:               "keen_eye",
			Name:             "Keen Eye",
			Description:      "Discover 5 secrets.",
			Category:         CategoryExploration,
			Tier:             TierBronze,
			PointValue:       10,
			GoldReward:       100,
			ExperienceReward: 200,
			Condition:        func(p *PlayerState) bool { return p.Statistics.SecretsFound >= 5 },
		},
		{
			Id:               "lore_keeper",
			Name:             "Lore Keeper",
			Description:      "Discover 25 secrets.",
			Category:         CategoryExploration,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       750,
			ExperienceReward: 1500,
			Condition:        func(p *PlayerState) bool { return p.Statistics.SecretsFound >= 25 },
		},

		// Economy

		{
			Id:               "first_fortune",
			Name:             "First Fortune",
			Description:      "Hold 1,000 gold at once.",
			Category:         CategoryEconomy,
			Tier:             TierBronze,
			PointValue:       10,
			ExperienceReward: 100,
			Condition:        func(p *PlayerState) bool { return p.Statistics.HighestGoldHeld >= 1000 },
		},
		{
			Id:               "gilded",
			Name:             "Gilded",
			Description:      "Hold 10,000 gold at once.",
			Category:         CategoryEconomy,
			Tier:             TierSilver,
			PointValue:       25,
			ExperienceReward: 500,
			Condition:        func(p *PlayerState) bool { return p.Statistics.HighestGoldHeld >= 10000 },
		},
		{
			Id:               "gold_baron",
			Name:             "Gold Baron",
			Description:      "Hold 100,000 gold at once.",
			Category:         CategoryEconomy,
			Tier:             TierGold,
			PointValue:       50,
			ExperienceReward: 2500,
			Condition:        func(p *PlayerState) bool { return p.Statistics.HighestGoldHeld >= 100000 },
		},
		{
			Id:               "big_spender",
			Name:             "Big Spender",
			Description:      "Spend 10,000 gold.",
			Category:         CategoryEconomy,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       500,
			ExperienceReward: 250,
			Condition:        func(p *PlayerState) bool { return p.Statistics.GoldSpent >= 10000 },
		},
		{
			Id:               "patron",
			Name:             "Patron",
			Description:      "Purchase 10 items.",
			Category:         CategoryEconomy,
			Tier:             TierBronze,
			PointValue:       10,
			GoldReward:       100,
			ExperienceReward: 100,
			Condition:        func(p *PlayerState) bool { return p.Statistics.ItemsPurchased >= 10 },
		},
		{
			Id:               "master_collector",
			Name:             "Master Collector",
			Description:      "Purchase 100 items.",
			Category:         CategoryEconomy,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       400,
			ExperienceReward: 400,
			Condition:        func(p *PlayerState) bool { return p.Statistics.ItemsPurchased >= 100 },
		},

		// Social

		{
			Id:               "first_friend",
			Name:             "First Friend",
			Description:      "Make your first friend.",
			Category:         CategorySocial,
			Tier:             TierBronze,
			PointValue:       10,
			GoldReward:       50,
			ExperienceReward: 100,
			Condition:        func(p *PlayerState) bool { return p.Statistics.FriendsGained >= 1 },
		},
		{
			Id:               "well_known",
			Name:             "Well Known",
			Description:      "Make 10 friends.",
			Category:         CategorySocial,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       250,
			ExperienceReward: 500,
			Condition:        func(p *PlayerState) bool { return p.Statistics.FriendsGained >= 10 },
		},
		{
			Id:               "beloved",
			Name:             "Beloved",
			Description:      "Make 50 friends.",
			Category:         CategorySocial,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       1000,
			ExperienceReward: 2000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.FriendsGained >= 50 },
		},
		{
			Id:               "wedded_bliss",
			Name:             "Wedded Bliss",
			Description:      "Get married.",
			Category:         CategorySocial,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       500,
			ExperienceReward: 500,
			UnlockMessage:    "Happily ever after.",
			Condition:        func(p *PlayerState) bool { return p.Married },
		},
		{
			Id:               "banner_sworn",
			Name:             "Banner Sworn",
			Description:      "Swear your banner to a team.",
			Category:         CategorySocial,
			Tier:             TierBronze,
			PointValue:       10,
			GoldReward:       100,
			ExperienceReward: 200,
			Condition:        func(p *PlayerState) bool { return p.HasTeam },
		},

		// Progression

		{
			Id:          "apprentice",
			Name:        "Apprentice",
			Description: "Reach level 5.",
			Category:    CategoryProgression,
			Tier:        TierBronze,
			PointValue:  10,
			GoldReward:  100,
			Condition:   func(p *PlayerState) bool { return p.Level >= 5 },
		},
		{
			Id:          "adventurer",
			Name:        "Adventurer",
			Description: "Reach level 10.",
			Category:    CategoryProgression,
			Tier:        TierBronze,
			PointValue:  10,
			GoldReward:  250,
			Condition:   func(p *PlayerState) bool { return p.Level >= 10 },
		},
		{
			Id:          "veteran",
			Name:        "Veteran",
			Description: "Reach level 25.",
			Category:    CategoryProgression,
			Tier:        TierSilver,
			PointValue:  25,
			GoldReward:  1000,
			Condition:   func(p *PlayerState) bool { return p.Level >= 25 },
		},
		{
			Id:          "master",
			Name:        "Master",
			Description: "Reach level 50.",
			Category:    CategoryProgression,
			Tier:        TierGold,
			PointValue:  50,
			GoldReward:  2500,
			Condition:   func(p *PlayerState) bool { return p.Level >= 50 },
		},
		{
			Id:          "living_legend",
			Name:        "Living Legend",
			Description: "Reach level 100.",
			Category:    CategoryProgression,
			Tier:        TierPlatinum,
			PointValue:  100,
			GoldReward:  10000,
			Condition:   func(p *PlayerState) bool { return p.Level >= 100 },
		},
		{
			Id:               "dedicated",
			Name:             "Dedicated",
			Description:      "Play on 7 days in a row.",
			Category:         CategoryProgression,
			Tier:             TierSilver,
			PointValue:       25,
			GoldReward:       250,
			ExperienceReward: 500,
			Condition:        func(p *PlayerState) bool { return p.Statistics.BestPlayStreak >= 7 },
		},
		{
			Id:               "devoted",
			Name:             "Devoted",
			Description:      "Play on 30 days in a row.",
			Category:         CategoryProgression,
			Tier:             TierGold,
			PointValue:       50,
			GoldReward:       1000,
			ExperienceReward: 2000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.BestPlayStreak >= 30 },
		},

		// Challenge

		{
			Id:               "crowned",
			Name:             "Crowned",
			Description:      "Claim the throne.",
			Category:         CategoryChallenge,
			Tier:             TierPlatinum,
			PointValue:       100,
			GoldReward:       5000,
			ExperienceReward: 5000,
			UnlockMessage:    "All hail.",
			Condition:        func(p *PlayerState) bool { return p.King },
		},
		{
			Id:               "iron_resolve",
			Name:             "Iron Resolve",
			Description:      "Reach level 25 in hardcore mode.",
			Category:         CategoryChallenge,
			Tier:             TierPlatinum,
			PointValue:       100,
			GoldReward:       2500,
			ExperienceReward: 5000,
			Condition:        func(p *PlayerState) bool { return p.Mode == ModeHardcore && p.Level >= 25 },
		},
		{
			Id:               "death_march",
			Name:             "Death March",
			Description:      "Die 10 times and keep coming back.",
			Category:         CategoryChallenge,
			Tier:             TierBronze,
			PointValue:       10,
			ExperienceReward: 500,
			UnlockMessage:    "Still standing.",
			Condition: func(p *PlayerState) bool {
				return p.Statistics.DeathsToMonsters+p.Statistics.DeathsToPlayers >= 10
			},
		},
		{
			Id:               "completionist",
			Name:             "Completionist",
			Description:      "Unlock every other standard achievement.",
			Category:         CategoryChallenge,
			Tier:             TierDiamond,
			Meta:             true,
			PointValue:       200,
			GoldReward:       10000,
			ExperienceReward: 20000,
			UnlockMessage:    "Nothing left undone.",
		},

		// Secret

		{
			Id:               "midnight_hoard",
			Name:             "Midnight Hoard",
			Description:      "Held a million gold at once.",
			SecretHint:       "A dragon would envy you.",
			Category:         CategorySecret,
			Tier:             TierDiamond,
			IsSecret:         true,
			PointValue:       200,
			ExperienceReward: 10000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.HighestGoldHeld >= 1000000 },
		},
		{
			Id:               "abyssal_whisper",
			Name:             "Abyssal Whisper",
			Description:      "Descended to dungeon level 50.",
			SecretHint:       "Few return from the deepest dark.",
			Category:         CategorySecret,
			Tier:             TierDiamond,
			IsSecret:         true,
			PointValue:       200,
			GoldReward:       5000,
			ExperienceReward: 10000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.DeepestDungeonLevel >= 50 },
		},
		{
			Id:               "thousand_cuts",
			Name:             "A Thousand Cuts",
			Description:      "Landed a thousand critical hits.",
			SecretHint:       "Precision, repeated.",
			Category:         CategorySecret,
			Tier:             TierPlatinum,
			IsSecret:         true,
			PointValue:       100,
			GoldReward:       1000,
			ExperienceReward: 2000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.CriticalHits >= 1000 },
		},
		{
			Id:               "leviathans_end",
			Name:             "Leviathan's End",
			Description:      "Slew all thirteen named horrors.",
			SecretHint:       "Thirteen legends, one hunter.",
			Category:         CategorySecret,
			Tier:             TierPlatinum,
			IsSecret:         true,
			PointValue:       100,
			GoldReward:       2500,
			ExperienceReward: 5000,
			Condition:        func(p *PlayerState) bool { return p.Statistics.UniquesKilled >= 13 },
		},
	}
}
