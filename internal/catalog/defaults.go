package catalog

func chance(v float64) *float64 { return &v }

// Default returns the built-in content set. A server with no content file
// runs entirely on these tables.
func Default() Content {
	return Content{
		Mechanics: Mechanics{
			PlayerBaseHP:         100,
			PlayerBaseDamageMin:  5,
			PlayerBaseDamageMax:  10,
			HealCost:             5,
			HealAmount:           20,
			XPLevelMultiplier:    1.5,
			HPGainPerLevel:       10,
			StackLimit:           64,
			PityThreshold:        50,
			GatherCooldownSecs:   60,
			ShopMarkup:           1.5,
			LuckRarityBonus:      0.1,
			LuckLootChanceBonus:  0.05,
			FleeBaseChance:       50,
			FleeLuckBonus:        2,
			FleeEnemyLevelMalus:  5,
			FleeFailDamageFrac:   0.1,
			RepairCostFrac:       0.5,
			DailyQuestCount:      3,
			MasteryPerKill:       5,
			MasteryPerEvent:      2,
			MasteryPerItemFind:   3,
			MasteryPerTextFind:   1,
			MasteryBossThreshold: 100,
		},
		Rarities: []RarityWeight{
			{Name: RarityCommon, Weight: 100},
			{Name: RarityUncommon, Weight: 50},
			{Name: RarityRare, Weight: 20},
			{Name: RarityEpic, Weight: 5},
			{Name: RarityLegendary, Weight: 1},
			{Name: RarityBoss, Weight: 0},
		},
		Difficulties: []DifficultyDefinition{
			{
				ID: "difficulty_easy", Name: "Easy",
				Description: "For those who want a relaxed experience.",
				Multipliers: DifficultyMultipliers{XP: 0.8, EnemyHP: 0.7, EnemyDmg: 0.7, LootChance: 0.8, RareLootChance: 0.5},
			},
			{
				ID: "difficulty_normal", Name: "Normal", Default: true,
				Description: "The standard adventure.",
				Multipliers: DifficultyMultipliers{XP: 1.0, EnemyHP: 1.0, EnemyDmg: 1.0, LootChance: 1.0, RareLootChance: 1.0},
			},
			{
				ID: "difficulty_hard", Name: "Hard",
				Description: "A challenge for seasoned veterans.",
				Multipliers: DifficultyMultipliers{XP: 1.5, EnemyHP: 1.5, EnemyDmg: 1.5, LootChance: 1.2, RareLootChance: 2.0},
			},
		},
		Ranks: []RankDefinition{
			{ID: "rank_adventurer", Name: "Adventurer", MinLevel: 1},
			{ID: "rank_veteran", Name: "Veteran", MinLevel: 10},
			{ID: "rank_elite", Name: "Elite", MinLevel: 25},
			{ID: "rank_champion", Name: "Champion", MinLevel: 50},
			{ID: "rank_legend", Name: "Legend", MinLevel: 100},
		},
		Worlds: []WorldDefinition{
			{
				ID: "world_green_valley", Name: "Green Valley",
				Description: "A lush, vibrant land filled with life and minor dangers.",
				MinLevel:    1,
				Zones: []ZoneDefinition{
					{Name: "Whispering Creek", MinLevel: 1, BossID: "boss_slime_king", Description: "A quiet stream inhabited by slimes."},
					{Name: "Shadow Thicket", MinLevel: 5, BossID: "boss_alpha_wolf", Description: "Dense woods where wolves prowl."},
					{Name: "Ancient Grove", MinLevel: 10, BossID: "boss_treant", Description: "The heart of the forest."},
				},
			},
		},
		Items:        defaultItems(),
		Enemies:      defaultEnemies(),
		Events:       defaultEvents(),
		Banners:      defaultBanners(),
		Quests:       defaultQuests(),
		GatherTables: defaultGatherTables(),
		Encounters: []string{
			"A gentle breeze rustles the tall grass, carrying the scent of wildflowers.",
			"You spot a peculiar, glowing mushroom, but wisely decide not to touch it.",
			"The sun breaks through the clouds, warming your face.",
			"In the distance, you hear the faint sound of running water.",
			"You pause for a moment, taking in the serene, sprawling landscape.",
			"An unusual rock formation catches your eye.",
			"A small butterfly flutters past your nose.",
			"The path ahead is clear and the air is fresh.",
		},
	}
}

func defaultItems() []ItemDefinition {
	return []ItemDefinition{
		// Common
		{ID: "item_stick", Name: "Sturdy Stick", Type: ItemTypeWeapon, Rarity: RarityCommon, Value: 5, Stats: &ItemStats{Damage: 2, Luck: 1}, MaxDurability: 20},
		{ID: "item_rags", Name: "Tattered Rags", Type: ItemTypeArmor, Rarity: RarityCommon, Value: 3, Stats: &ItemStats{Defense: 1, Luck: 1}, MaxDurability: 15},
		{ID: "item_apple", Name: "Bruised Apple", Type: ItemTypeConsumable, Rarity: RarityCommon, Value: 2, Effect: &ConsumableEffect{Kind: EffectHeal, Amount: 10}},
		{ID: "item_rock", Name: "Heavy Rock", Type: ItemTypeWeapon, Rarity: RarityCommon, Value: 4, Stats: &ItemStats{Damage: 3}, MaxDurability: 15},
		{ID: "item_sandals", Name: "Worn Sandals", Type: ItemTypeFeet, Rarity: RarityCommon, Value: 5, Stats: &ItemStats{Defense: 1, Luck: 2}, MaxDurability: 20},
		{ID: "item_bandana", Name: "Cloth Bandana", Type: ItemTypeHead, Rarity: RarityCommon, Value: 4, Stats: &ItemStats{Defense: 1, Luck: 1}, MaxDurability: 15},
		{ID: "item_pants", Name: "Torn Trousers", Type: ItemTypeLegs, Rarity: RarityCommon, Value: 4, Stats: &ItemStats{Defense: 1}, MaxDurability: 20},
		{ID: "item_bread", Name: "Stale Bread", Type: ItemTypeConsumable, Rarity: RarityCommon, Value: 3, Effect: &ConsumableEffect{Kind: EffectHeal, Amount: 15}},

		// Uncommon
		{ID: "item_shortsword", Name: "Shortsword", Type: ItemTypeWeapon, Rarity: RarityUncommon, Value: 25, Stats: &ItemStats{Damage: 6, Defense: 1}, MaxDurability: 50},
		{ID: "item_leather_vest", Name: "Leather Vest", Type: ItemTypeArmor, Rarity: RarityUncommon, Value: 20, Stats: &ItemStats{Defense: 4, Luck: 2}, MaxDurability: 40},
		{ID: "item_minor_potion", Name: "Minor Healing Potion", Type: ItemTypeConsumable, Rarity: RarityUncommon, Value: 15, Effect: &ConsumableEffect{Kind: EffectHeal, Amount: 25}},
		{ID: "item_iron_mace", Name: "Iron Mace", Type: ItemTypeWeapon, Rarity: RarityUncommon, Value: 30, Stats: &ItemStats{Damage: 8}, MaxDurability: 60},
		{ID: "item_leather_boots", Name: "Leather Boots", Type: ItemTypeFeet, Rarity: RarityUncommon, Value: 18, Stats: &ItemStats{Defense: 2, Luck: 3}, MaxDurability: 35},
		{ID: "item_leather_cap", Name: "Leather Cap", Type: ItemTypeHead, Rarity: RarityUncommon, Value: 15, Stats: &ItemStats{Defense: 2, Luck: 1}, MaxDurability: 30},
		{ID: "item_leather_pants", Name: "Leather Pants", Type: ItemTypeLegs, Rarity: RarityUncommon, Value: 18, Stats: &ItemStats{Defense: 3}, MaxDurability: 40},
		{ID: "item_copper_ring", Name: "Copper Ring", Type: ItemTypeAccessory, Rarity: RarityUncommon, Value: 40, Stats: &ItemStats{Luck: 4, Defense: 1}, MaxDurability: 100},

		// Rare
		{ID: "item_longsword", Name: "Steel Longsword", Type: ItemTypeWeapon, Rarity: RarityRare, Value: 100, Stats: &ItemStats{Damage: 14, Defense: 2}, MaxDurability: 100},
		{ID: "item_chainmail", Name: "Chainmail Tunic", Type: ItemTypeArmor, Rarity: RarityRare, Value: 80, Stats: &ItemStats{Defense: 10, Damage: 1}, MaxDurability: 80},
		{ID: "item_luck_charm", Name: "Lucky Charm", Type: ItemTypeAccessory, Rarity: RarityRare, Value: 150, Stats: &ItemStats{Luck: 8, Defense: 2}, MaxDurability: 50},
		{ID: "item_steel_axe", Name: "Steel Axe", Type: ItemTypeWeapon, Rarity: RarityRare, Value: 110, Stats: &ItemStats{Damage: 16}, MaxDurability: 90},
		{ID: "item_plate_boots", Name: "Steel Boots", Type: ItemTypeFeet, Rarity: RarityRare, Value: 70, Stats: &ItemStats{Defense: 6, Damage: 1}, MaxDurability: 80},
		{ID: "item_plate_helm", Name: "Steel Helm", Type: ItemTypeHead, Rarity: RarityRare, Value: 75, Stats: &ItemStats{Defense: 6, Luck: 1}, MaxDurability: 80},
		{ID: "item_plate_legs", Name: "Steel Greaves", Type: ItemTypeLegs, Rarity: RarityRare, Value: 85, Stats: &ItemStats{Defense: 7}, MaxDurability: 90},
		{ID: "item_major_potion", Name: "Major Healing Potion", Type: ItemTypeConsumable, Rarity: RarityRare, Value: 50, Effect: &ConsumableEffect{Kind: EffectHeal, Amount: 75}},

		// Epic
		{ID: "item_obsidian_blade", Name: "Obsidian Blade", Type: ItemTypeWeapon, Rarity: RarityEpic, Value: 500, Stats: &ItemStats{Damage: 25, Luck: 5}, MaxDurability: 150},
		{ID: "item_dragon_vest", Name: "Dragonscale Vest", Type: ItemTypeArmor, Rarity: RarityEpic, Value: 450, Stats: &ItemStats{Defense: 20, Damage: 3}, MaxDurability: 140},
		{ID: "item_ancient_ring", Name: "Ancient Ring", Type: ItemTypeAccessory, Rarity: RarityEpic, Value: 600, Stats: &ItemStats{Damage: 5, Defense: 5, Luck: 5}, MaxDurability: 200},

		// Legendary
		{ID: "item_excalibur", Name: "Excalibur", Type: ItemTypeWeapon, Rarity: RarityLegendary, Value: 2000, Stats: &ItemStats{Damage: 50, Defense: 10, Luck: 10}, MaxDurability: 300},
		{ID: "item_celestial_robe", Name: "Celestial Robes", Type: ItemTypeArmor, Rarity: RarityLegendary, Value: 1800, Stats: &ItemStats{Defense: 40, Luck: 20}, MaxDurability: 250},
		{ID: "item_soul_gem", Name: "Soul Gem", Type: ItemTypeAccessory, Rarity: RarityLegendary, Value: 2500, Stats: &ItemStats{Luck: 30, Damage: 10, Defense: 10}, MaxDurability: 500},

		// Gacha exclusives
		{ID: "item_void_blade", Name: "Void Blade", Type: ItemTypeWeapon, Rarity: RarityRare, Value: 500, Stats: &ItemStats{Damage: 20, Luck: 5}, MaxDurability: 150, GachaExclusive: true},
		{ID: "item_aegis_plate", Name: "Aegis Plate", Type: ItemTypeArmor, Rarity: RarityRare, Value: 450, Stats: &ItemStats{Defense: 18, Damage: 2}, MaxDurability: 120, GachaExclusive: true},
		{ID: "item_golden_apple", Name: "Golden Apple", Type: ItemTypeConsumable, Rarity: RarityRare, Value: 300, Effect: &ConsumableEffect{Kind: EffectHeal, Amount: 100}, GachaExclusive: true},
		{ID: "gacha_sword_training", Name: "Otherworldly Training Sword", Type: ItemTypeWeapon, Rarity: RarityCommon, Value: 50, Stats: &ItemStats{Damage: 18}, MaxDurability: 60, GachaExclusive: true},
		{ID: "gacha_vest_novice", Name: "Summoner's Vest", Type: ItemTypeArmor, Rarity: RarityCommon, Value: 50, Stats: &ItemStats{Defense: 12, Luck: 1}, MaxDurability: 60, GachaExclusive: true},
		{ID: "gacha_potion_elixir", Name: "Celestial Elixir", Type: ItemTypeConsumable, Rarity: RarityRare, Value: 500, Effect: &ConsumableEffect{Kind: EffectHeal, Amount: 500}, GachaExclusive: true},
		{ID: "gacha_shield_aegis", Name: "Aegis Shield", Type: ItemTypeArmor, Rarity: RarityEpic, Value: 2500, Stats: &ItemStats{Defense: 85, Damage: 15}, MaxDurability: 150, GachaExclusive: true},
		{ID: "gacha_boots_hermes", Name: "Boots of Hermes", Type: ItemTypeFeet, Rarity: RarityEpic, Value: 3000, Stats: &ItemStats{Defense: 25, Luck: 20}, MaxDurability: 120, GachaExclusive: true},
		{ID: "gacha_blade_eternity", Name: "Blade of Eternity", Type: ItemTypeWeapon, Rarity: RarityLegendary, Value: 5000, Stats: &ItemStats{Damage: 160, Luck: 15}, MaxDurability: 200, GachaExclusive: true},
		{ID: "gacha_helm_domination", Name: "Helm of Domination", Type: ItemTypeHead, Rarity: RarityLegendary, Value: 6000, Stats: &ItemStats{Defense: 70, Damage: 45}, MaxDurability: 180, GachaExclusive: true},

		// Tools
		{ID: "item_pickaxe", Name: "Iron Pickaxe", Type: ItemTypeTool, Rarity: RarityCommon, Value: 50, Description: "Essential for mining ore."},
		{ID: "item_gloves", Name: "Leather Gloves", Type: ItemTypeTool, Rarity: RarityCommon, Value: 30, Description: "Protect hands from thorns and toxins."},
		{ID: "item_key", Name: "Iron Key", Type: ItemTypeConsumable, Rarity: RarityUncommon, Value: 25, Description: "Opens a standard lock."},

		// Boss drops
		{ID: "item_slime_crown", Name: "Slime Crown", Type: ItemTypeHead, Rarity: RarityRare, Value: 200, Stats: &ItemStats{Defense: 5, Luck: 5}, MaxDurability: 50, Description: "Sticky but regal."},
		{ID: "item_wolf_fang_dagger", Name: "Wolf Fang", Type: ItemTypeWeapon, Rarity: RarityRare, Value: 250, Stats: &ItemStats{Damage: 18, Luck: 3}, MaxDurability: 80, Description: "Carved from a giant fang."},
		{ID: "item_living_wood_staff", Name: "Living Staff", Type: ItemTypeWeapon, Rarity: RarityEpic, Value: 600, Stats: &ItemStats{Damage: 22, Defense: 5, Luck: 8}, MaxDurability: 120, Description: "It still grows leaves."},

		// Materials
		{ID: "mat_iron_ore", Name: "Iron Ore", Type: ItemTypeMaterial, Rarity: RarityCommon, Value: 5, Description: "Raw iron found in rocks."},
		{ID: "mat_gold_ore", Name: "Gold Ore", Type: ItemTypeMaterial, Rarity: RarityUncommon, Value: 15, Description: "Shiny raw gold."},
		{ID: "mat_wood", Name: "Oak Log", Type: ItemTypeMaterial, Rarity: RarityCommon, Value: 2, Description: "Basic wood."},
		{ID: "mat_stone", Name: "Stone", Type: ItemTypeMaterial, Rarity: RarityCommon, Value: 1, Description: "Just a rock."},
		{ID: "mat_berry", Name: "Wild Berry", Type: ItemTypeMaterial, Rarity: RarityCommon, Value: 2, Description: "A sweet forest treat."},
		{ID: "mat_mushroom", Name: "Red Mushroom", Type: ItemTypeMaterial, Rarity: RarityCommon, Value: 3, Description: "Looks edible."},
		{ID: "mat_fish", Name: "Raw Trout", Type: ItemTypeMaterial, Rarity: RarityCommon, Value: 5, Description: "Slippery."},
	}
}

func defaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{ID: "enemy_slime", Name: "Slime", MaxHP: 30, XP: 10, Gold: 5, Level: 1, Rarity: RarityCommon},
		{ID: "enemy_rat", Name: "Giant Rat", MaxHP: 25, XP: 8, Gold: 3, Level: 1, Rarity: RarityCommon},
		{ID: "enemy_bat", Name: "Cave Bat", MaxHP: 20, XP: 7, Gold: 4, Level: 1, Rarity: RarityCommon},

		{ID: "enemy_wolf", Name: "Wolf", MaxHP: 60, XP: 25, Gold: 12, Level: 3, Rarity: RarityUncommon},
		{ID: "enemy_goblin", Name: "Goblin Scout", MaxHP: 50, XP: 20, Gold: 10, Level: 3, Rarity: RarityUncommon},
		{ID: "enemy_spider", Name: "Forest Spider", MaxHP: 70, XP: 30, Gold: 15, Level: 3, Rarity: RarityUncommon},

		{ID: "enemy_bandit", Name: "Bandit", MaxHP: 100, XP: 50, Gold: 30, Level: 6, Rarity: RarityRare},
		{ID: "enemy_orc", Name: "Orc Grunt", MaxHP: 120, XP: 65, Gold: 40, Level: 6, Rarity: RarityRare},
		{ID: "enemy_golem", Name: "Rock Golem", MaxHP: 150, XP: 80, Gold: 25, Level: 6, Rarity: RarityRare},

		{ID: "boss_slime_king", Name: "King Slime", MaxHP: 300, XP: 150, Gold: 100, Level: 4, Rarity: RarityBoss,
			Loot: []LootEntry{{ItemID: "item_slime_crown", Chance: 0.3}}},
		{ID: "boss_alpha_wolf", Name: "Alpha Wolf", MaxHP: 500, XP: 300, Gold: 180, Level: 8, Rarity: RarityBoss,
			Loot: []LootEntry{{ItemID: "item_wolf_fang_dagger", Chance: 0.3}}},
		{ID: "boss_treant", Name: "Elder Treant", MaxHP: 800, XP: 500, Gold: 250, Level: 12, Rarity: RarityBoss,
			Loot: []LootEntry{{ItemID: "item_living_wood_staff", Chance: 0.3}}},
	}
}

func defaultBanners() []GachaBanner {
	return []GachaBanner{
		{
			ID: "banner_standard", Name: "Standard Supply",
			Description: "A standard shipment of supplies. Contains all types of items.",
			Cost:        50,
			Rates: []GachaRate{
				{Rarity: RarityCommon, Percent: 60},
				{Rarity: RarityUncommon, Percent: 30},
				{Rarity: RarityRare, Percent: 8},
				{Rarity: RarityEpic, Percent: 1.5},
				{Rarity: RarityLegendary, Percent: 0.5},
			},
			PoolType: GachaPoolAll,
		},
		{
			ID: "banner_warrior", Name: "Warrior's Cache",
			Description: "Specialized equipment for combat. Higher chance for Weapons and Armor.",
			Cost:        150,
			Rates: []GachaRate{
				{Rarity: RarityCommon, Percent: 40},
				{Rarity: RarityUncommon, Percent: 40},
				{Rarity: RarityRare, Percent: 15},
				{Rarity: RarityEpic, Percent: 4},
				{Rarity: RarityLegendary, Percent: 1},
			},
			PoolType: GachaPoolEquipment,
		},
		{
			ID: "banner_fortune", Name: "Fortune's Favor",
			Description: "High risk, high reward. Significantly increased Rare chance.",
			Cost:        500,
			Rates: []GachaRate{
				{Rarity: RarityCommon, Percent: 30},
				{Rarity: RarityUncommon, Percent: 30},
				{Rarity: RarityRare, Percent: 30},
				{Rarity: RarityEpic, Percent: 8},
				{Rarity: RarityLegendary, Percent: 2},
			},
			PoolType: GachaPoolAll,
		},
	}
}

func defaultQuests() []QuestTemplate {
	return []QuestTemplate{
		{ID: "q_hunt_slime", Kind: QuestHunt, TargetID: "enemy_slime", TargetName: "Slime", Amount: 5,
			Name: "Slime Squasher", Description: "Defeat 5 Slimes.", Reward: QuestReward{Gold: 25, XP: 50}},
		{ID: "q_hunt_rat", Kind: QuestHunt, TargetID: "enemy_rat", TargetName: "Giant Rat", Amount: 3,
			Name: "Pest Control", Description: "Exterminate 3 Giant Rats.", Reward: QuestReward{Gold: 15, XP: 30}},
		{ID: "q_collect_wood", Kind: QuestCollect, TargetID: "mat_wood", TargetName: "Oak Log", Amount: 3,
			Name: "Firewood", Description: "Gather 3 Oak Logs.", Reward: QuestReward{Gold: 20, XP: 20}},
		{ID: "q_collect_berry", Kind: QuestCollect, TargetID: "mat_berry", TargetName: "Wild Berry", Amount: 5,
			Name: "Berry Picker", Description: "Collect 5 Wild Berries.", Reward: QuestReward{Gold: 25, XP: 25}},
		{ID: "q_hunt_wolf", Kind: QuestHunt, TargetID: "enemy_wolf", TargetName: "Wolf", Amount: 3,
			Name: "Wolf Hunter", Description: "Hunt 3 Wolves.", Reward: QuestReward{Gold: 60, XP: 100}},
		{ID: "q_collect_iron", Kind: QuestCollect, TargetID: "mat_iron_ore", TargetName: "Iron Ore", Amount: 2,
			Name: "Heavy Metal", Description: "Bring 2 Iron Ore.", Reward: QuestReward{Gold: 80, XP: 80}},
	}
}

func defaultGatherTables() []GatherTable {
	return []GatherTable{
		{
			Type:         "mining",
			RequiredTool: "item_pickaxe",
			Tiers: []GatherTier{
				{Threshold: 0.60, ItemID: "mat_stone", XP: 5, Message: "You chip off a chunk of stone."},
				{Threshold: 0.90, ItemID: "mat_iron_ore", XP: 15, Message: "You strike a vein of iron!"},
				{Threshold: 1.00, ItemID: "mat_gold_ore", XP: 30, Message: "A glimmer of gold in the rock!"},
			},
		},
		{
			Type: "foraging",
			Tiers: []GatherTier{
				{Threshold: 0.50, ItemID: "mat_berry", XP: 5, Message: "You pick a handful of wild berries."},
				{Threshold: 0.80, ItemID: "mat_wood", XP: 10, Message: "You gather some fallen branches."},
				{Threshold: 1.00, ItemID: "mat_mushroom", XP: 15, Message: "You find a bright red mushroom."},
			},
		},
	}
}
