package catalog

func defaultEvents() []EventDefinition {
	return []EventDefinition{
		{
			ID: "evt_shrine", Type: EventTypeNarrative, Title: "Mysterious Shrine",
			Description: "You find an ancient shrine glowing with faint blue light. An offering bowl sits empty.",
			Choices: []EventChoice{
				{ID: "pray", Text: "Pray for health", Effect: Effect{Kind: EffectHeal, Amount: 50, Chance: chance(0.8),
					Fail: &Effect{Kind: EffectDamage, Amount: 10, Message: "The shrine rejects you!"}}},
				{ID: "loot", Text: "Steal the offerings", Effect: Effect{Kind: EffectGold, Amount: 50, Chance: chance(0.5),
					Fail: &Effect{Kind: EffectCombat, EnemyRarity: RarityUncommon, Message: "A guardian spirit attacks!"}}},
				{ID: "leave", Text: "Leave it alone", Effect: Effect{Kind: EffectText, Message: "You walk away respectfully."}},
			},
		},
		{
			ID: "evt_wagon", Type: EventTypeNarrative, Title: "Abandoned Wagon",
			Description: "A broken wagon lies on the side of the road. It looks like it was attacked recently.",
			Choices: []EventChoice{
				{ID: "search", Text: "Search for supplies", Effect: Effect{Kind: EffectItem, Rarity: RarityCommon, Chance: chance(0.7),
					Fail: &Effect{Kind: EffectCombat, EnemyRarity: RarityCommon, Message: "A goblin jumps out from the wreckage!"}}},
				{ID: "salvage", Text: "Salvage parts", Effect: Effect{Kind: EffectGold, Amount: 20, Chance: chance(1.0)}},
				{ID: "ignore", Text: "Keep moving", Effect: Effect{Kind: EffectText, Message: "Not your problem."}},
			},
		},
		{
			ID: "evt_merchant", Type: EventTypeNarrative, Title: "Shady Merchant",
			Description: "A hooded figure approaches you, offering a 'Mystery Box' for 50 Gold.",
			Choices: []EventChoice{
				{ID: "buy", Text: "Buy Box (50G)", Requirement: &Requirement{Kind: RequirementGold, Amount: 50},
					Effect: Effect{Kind: EffectItem, Rarity: RarityRare, Chance: chance(0.4),
						Fail: &Effect{Kind: EffectItem, Rarity: RarityCommon, Message: "It was just junk..."}}},
				{ID: "rob", Text: "Try to rob him", Effect: Effect{Kind: EffectGold, Amount: 100, Chance: chance(0.3),
					Fail: &Effect{Kind: EffectCombat, EnemyRarity: RarityRare, Message: "The merchant is a retired assassin!"}}},
				{ID: "decline", Text: "Decline", Effect: Effect{Kind: EffectText, Message: "You wave him away."}},
			},
		},
		{
			ID: "evt_traveler", Type: EventTypeNarrative, Title: "Injured Traveler",
			Description: "A fellow adventurer is leaning against a tree, bleeding from a wound.",
			Choices: []EventChoice{
				{ID: "help", Text: "Give Potion (Cost 20G)", Requirement: &Requirement{Kind: RequirementGold, Amount: 20},
					Effect: Effect{Kind: EffectXP, Amount: 100, Chance: chance(1.0), Message: "He thanks you profusely and shares his map knowledge."}},
				{ID: "rob", Text: "Take his gear", Effect: Effect{Kind: EffectGold, Amount: 40, Chance: chance(0.8),
					Fail: &Effect{Kind: EffectDamage, Amount: 20, Message: "He fights back desperately!"}}},
				{ID: "ignore", Text: "Walk past", Effect: Effect{Kind: EffectText, Message: "Survival of the fittest."}},
			},
		},
		{
			ID: "evt_berry", Type: EventTypeNarrative, Title: "Glowing Berry Bush",
			Description: "You spot a bush with strange, pulsating purple berries.",
			Choices: []EventChoice{
				{ID: "eat", Text: "Eat a berry", Effect: Effect{Kind: EffectHeal, Amount: 100, Chance: chance(0.5),
					Fail: &Effect{Kind: EffectDamage, Amount: 15, Message: "It's poisonous!"}}},
				{ID: "harvest", Text: "Harvest carefully", Effect: Effect{Kind: EffectItem, Rarity: RarityUncommon, Chance: chance(0.7),
					Fail: &Effect{Kind: EffectText, Message: "The berries squish in your hands."}}},
				{ID: "ignore", Text: "Too risky", Effect: Effect{Kind: EffectText, Message: "Better safe than sorry."}},
			},
		},
		{
			ID: "evt_monolith", Type: EventTypeNarrative, Title: "Ancient Monolith",
			Description: "A stone slab covered in indecipherable runes stands before you.",
			Choices: []EventChoice{
				{ID: "touch", Text: "Touch the runes", Effect: Effect{Kind: EffectXP, Amount: 200, Chance: chance(0.4),
					Fail: &Effect{Kind: EffectDamage, Amount: 30, Message: "Arcane energy shocks you!"}}},
				{ID: "study", Text: "Study from afar", Effect: Effect{Kind: EffectXP, Amount: 50, Chance: chance(1.0)}},
				{ID: "destroy", Text: "Smash it", Effect: Effect{Kind: EffectCombat, EnemyRarity: RarityRare, Message: "You awoke something ancient!"}},
			},
		},
		{
			ID: "evt_gambler", Type: EventTypeNarrative, Title: "Goblin Gambler",
			Description: "A goblin isn't attacking; he's shuffling cards. 'Double or nothing?' he grins.",
			Choices: []EventChoice{
				{ID: "bet_small", Text: "Bet 20 Gold", Requirement: &Requirement{Kind: RequirementGold, Amount: 20},
					Effect: Effect{Kind: EffectGold, Amount: 40, Chance: chance(0.5),
						Fail: &Effect{Kind: EffectText, Message: "You lost the hand."}}},
				{ID: "bet_big", Text: "Bet 100 Gold", Requirement: &Requirement{Kind: RequirementGold, Amount: 100},
					Effect: Effect{Kind: EffectGold, Amount: 200, Chance: chance(0.4),
						Fail: &Effect{Kind: EffectText, Message: "You lost the hand."}}},
				{ID: "fight", Text: "Just fight him", Effect: Effect{Kind: EffectCombat, EnemyRarity: RarityUncommon, Message: "He flips the table!"}},
			},
		},
		{
			ID: "evt_chest", Type: EventTypeNarrative, Title: "Cursed Chest",
			Description: "A treasure chest sits in the open, wrapped in ominous black chains.",
			Choices: []EventChoice{
				{ID: "open", Text: "Break the chains", Effect: Effect{Kind: EffectItem, Rarity: RarityEpic, Chance: chance(0.3),
					Fail: &Effect{Kind: EffectCombat, EnemyRarity: RarityRare, Message: "The chest was a mimic!"}}},
				{ID: "dispel", Text: "Cleanse it", Effect: Effect{Kind: EffectItem, Rarity: RarityRare, Chance: chance(0.6),
					Fail: &Effect{Kind: EffectDamage, Amount: 25, Message: "The curse backfires."}}},
				{ID: "leave", Text: "Walk away", Effect: Effect{Kind: EffectText, Message: "Not worth the curse."}},
			},
		},
		{
			ID: "evt_fountain", Type: EventTypeNarrative, Title: "Fountain of Youth",
			Description: "Crystal clear water flows from a marble statue. You feel younger just looking at it.",
			Choices: []EventChoice{
				{ID: "drink", Text: "Drink deeply", Effect: Effect{Kind: EffectHeal, Amount: 999, Chance: chance(0.8),
					Fail: &Effect{Kind: EffectDamage, Amount: 50, Message: "The water turns to acid in your mouth!"}}},
				{ID: "bottle", Text: "Fill a bottle", Effect: Effect{Kind: EffectItem, Rarity: RarityRare, Chance: chance(1.0)}},
				{ID: "coin", Text: "Toss a coin", Requirement: &Requirement{Kind: RequirementGold, Amount: 1},
					Effect: Effect{Kind: EffectXP, Amount: 50, Chance: chance(1.0), Message: "You feel lucky."}},
			},
		},
		{
			ID: "evt_wolf", Type: EventTypeNarrative, Title: "Stray Wolf Pup",
			Description: "A wolf pup is caught in a hunter's trap. It whimpers softly.",
			Choices: []EventChoice{
				{ID: "free", Text: "Free the pup", Effect: Effect{Kind: EffectItem, Rarity: RarityUncommon, Chance: chance(0.7),
					Message: "The pup leads you to a buried stash.",
					Fail:    &Effect{Kind: EffectDamage, Amount: 10, Message: "It bit you in panic and ran."}}},
				{ID: "feed", Text: "Feed it meat", Effect: Effect{Kind: EffectXP, Amount: 150, Chance: chance(1.0), Message: "You made a friend (for now)."}},
				{ID: "leave", Text: "Nature is cruel", Effect: Effect{Kind: EffectText, Message: "You leave it to its fate."}},
			},
		},
		{
			ID: "evt_mining", Type: EventTypeGathering, Title: "Vein of Gold",
			Description: "A shimmering vein of gold runs through the rock face here.",
			Choices: []EventChoice{
				{ID: "mine", Text: "Mine it", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_pickaxe", ItemName: "Iron Pickaxe"},
					Effect: Effect{Kind: EffectGold, Amount: 75, Chance: chance(1.0), Message: "You chip away the gold!"}},
				{ID: "leave", Text: "Leave it", Effect: Effect{Kind: EffectText, Message: "You lack the tools to mine this."}},
			},
		},
		{
			ID: "evt_foraging", Type: EventTypeGathering, Title: "Rare Herb",
			Description: "A rare, thorny medicinal herb grows in the shade.",
			Choices: []EventChoice{
				{ID: "harvest", Text: "Harvest safely", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_gloves", ItemName: "Leather Gloves"},
					Effect: Effect{Kind: EffectItem, Rarity: RarityUncommon, Chance: chance(1.0), Message: "You safely harvested the herb."}},
				{ID: "grab", Text: "Grab it barehanded", Effect: Effect{Kind: EffectDamage, Amount: 15, Chance: chance(0.0),
					Fail: &Effect{Kind: EffectDamage, Amount: 15, Message: "The thorns cut your hands deeply!"}}},
			},
		},
		{
			ID: "evt_chest_locked", Type: EventTypeGathering, Title: "Locked Chest",
			Description: "A sturdy chest with a heavy iron lock.",
			Choices: []EventChoice{
				{ID: "key", Text: "Use Iron Key", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_key", ItemName: "Iron Key", Consume: true},
					Effect: Effect{Kind: EffectItem, Rarity: RarityRare, Chance: chance(1.0), Message: "The lock clicks open."}},
				{ID: "pick", Text: "Pick Lock", Requirement: &Requirement{Kind: RequirementStat, Stat: "luck", Amount: 5},
					Effect: Effect{Kind: EffectItem, Rarity: RarityUncommon, Chance: chance(0.6),
						Fail: &Effect{Kind: EffectText, Message: "You failed to pick the lock."}}},
				{ID: "leave", Text: "Leave it", Effect: Effect{Kind: EffectText, Message: "It remains locked."}},
			},
		},
		{
			ID: "evt_whispering_cave", Type: EventTypeNarrative, Title: "Whispering Cave",
			Description: "A dark cave entrance emanates unsettling whispers. The air is cold.",
			Choices: []EventChoice{
				{ID: "enter", Text: "Follow the whispers", Effect: Effect{Kind: EffectCombat, EnemyRarity: RarityUncommon, Message: "The whispers were a lure! A cave horror attacks!"}},
				{ID: "listen", Text: "Try to understand the whispers", Requirement: &Requirement{Kind: RequirementStat, Stat: "luck", Amount: 10},
					Effect: Effect{Kind: EffectXP, Amount: 250, Message: "You decipher a fragment of ancient lore, gaining insight."}},
				{ID: "flee", Text: "Flee in terror", Effect: Effect{Kind: EffectText, Message: "You wisely decide not to mess with haunted caves."}},
			},
		},
		{
			ID: "evt_sleeping_giant", Type: EventTypeNarrative, Title: "Sleeping Giant",
			Description: "A colossal giant slumbers, blocking the path. His snores shake the ground.",
			Choices: []EventChoice{
				{ID: "sneak", Text: "Attempt to sneak past", Effect: Effect{Kind: EffectXP, Amount: 100, Chance: chance(0.6),
					Fail: &Effect{Kind: EffectCombat, EnemyRarity: RarityEpic, Message: "You stepped on a twig! The giant awakens, enraged!"}}},
				{ID: "steal", Text: "Rummage through his pouch", Effect: Effect{Kind: EffectItem, Rarity: RarityRare, Chance: chance(0.4),
					Fail: &Effect{Kind: EffectDamage, Amount: 50, Message: "The giant swats you away like a fly."}}},
				{ID: "wait", Text: "Wait for him to move", Effect: Effect{Kind: EffectText, Message: "You wait for an hour. He doesn't budge. You find another path."}},
			},
		},
		{
			ID: "evt_fairy_ring", Type: EventTypeNarrative, Title: "Fairy Ring",
			Description: "A perfect circle of vibrant mushrooms grows in a clearing. It feels magical.",
			Choices: []EventChoice{
				{ID: "step_in", Text: "Step into the circle", Effect: Effect{Kind: EffectHeal, Amount: 150, Chance: chance(0.5),
					Fail: &Effect{Kind: EffectDamage, Amount: 40, Message: "The fairies are mischievous and drain your energy!"}}},
				{ID: "eat_shroom", Text: "Eat a mushroom", Effect: Effect{Kind: EffectXP, Amount: 300, Chance: chance(0.3),
					Fail: &Effect{Kind: EffectDamage, Amount: 25, Message: "You feel terribly sick."}}},
				{ID: "observe", Text: "Observe from a distance", Effect: Effect{Kind: EffectXP, Amount: 20, Message: "You appreciate the magical sight."}},
			},
		},
		{
			ID: "evt_lost_child", Type: EventTypeNarrative, Title: "Lost Child",
			Description: "You find a child crying alone in the woods.",
			Choices: []EventChoice{
				{ID: "help", Text: "Help them find their way home", Effect: Effect{Kind: EffectXP, Amount: 200, Message: "You guide the child back to a nearby village. The grateful parents reward you."}},
				{ID: "give_food", Text: "Give them some food", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_bread", ItemName: "Stale Bread", Consume: true},
					Effect: Effect{Kind: EffectXP, Amount: 50, Message: "The child thanks you and seems a bit safer now."}},
				{ID: "ignore", Text: "Ignore them", Effect: Effect{Kind: EffectText, Message: "You have your own problems to worry about."}},
			},
		},
		{
			ID: "evt_broken_bridge", Type: EventTypeNarrative, Title: "Broken Bridge",
			Description: "A wide chasm is spanned by a dangerously rotten bridge.",
			Choices: []EventChoice{
				{ID: "cross", Text: "Cross carefully", Effect: Effect{Kind: EffectText, Message: "You make it across, your heart pounding.", Chance: chance(0.7),
					Fail: &Effect{Kind: EffectDamage, Amount: 35, Message: "A plank snaps! You fall but manage to climb out, bruised."}}},
				{ID: "repair", Text: "Repair with wood", Requirement: &Requirement{Kind: RequirementItem, ItemID: "mat_wood", ItemName: "Oak Log", Consume: true},
					Effect: Effect{Kind: EffectXP, Amount: 75, Message: "You reinforce the bridge, making it safe to cross."}},
				{ID: "find_way", Text: "Find another way", Effect: Effect{Kind: EffectText, Message: "You spend an hour finding a safe crossing downstream."}},
			},
		},
		{
			ID: "evt_alchemist_hut", Type: EventTypeNarrative, Title: "Alchemist's Hut",
			Description: "You find an abandoned hut filled with strange potions and books.",
			Choices: []EventChoice{
				{ID: "drink", Text: "Drink a bubbling green potion", Effect: Effect{Kind: EffectHeal, Amount: 200, Chance: chance(0.5),
					Fail: &Effect{Kind: EffectDamage, Amount: 50, Message: "It was poison!"}}},
				{ID: "read", Text: "Read the alchemist's journal", Effect: Effect{Kind: EffectXP, Amount: 150, Message: "You learn a few secrets about potion-making."}},
				{ID: "steal", Text: "Steal ingredients", Effect: Effect{Kind: EffectItem, Rarity: RarityUncommon, Chance: chance(1.0)}},
			},
		},
		{
			ID: "evt_talking_tree", Type: EventTypeNarrative, Title: "Talking Tree",
			Description: "A wizened, ancient tree turns its bark-like face to you. 'Well, hello there,' it rumbles.",
			Choices: []EventChoice{
				{ID: "listen", Text: "Listen to its story", Effect: Effect{Kind: EffectXP, Amount: 250, Message: "The tree tells you a tale from a forgotten age."}},
				{ID: "ask_gift", Text: "Ask for a gift", Effect: Effect{Kind: EffectItem, ItemID: "mat_wood", Chance: chance(0.8),
					Fail: &Effect{Kind: EffectText, Message: "'The nerve!' The tree falls silent."}}},
				{ID: "chop", Text: "Chop it for wood", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_axe", ItemName: "Iron Axe"},
					Effect: Effect{Kind: EffectCombat, EnemyRarity: RarityEpic, Message: "The tree animates into a furious Treant!"}},
			},
		},
		{
			ID: "evt_rival", Type: EventTypeNarrative, Title: "Rival Adventurer",
			Description: "A cocky adventurer blocks your path. 'This territory is mine! Prove your worth or leave!'",
			Choices: []EventChoice{
				{ID: "duel", Text: "Duel them!", Effect: Effect{Kind: EffectCombat, EnemyRarity: RarityRare, Message: "You accept the challenge!"}},
				{ID: "wager", Text: "Wager 100G on the duel", Requirement: &Requirement{Kind: RequirementGold, Amount: 100},
					Effect: Effect{Kind: EffectGold, Amount: 200, Chance: chance(0.5),
						Fail: &Effect{Kind: EffectCombat, EnemyRarity: RarityRare, Message: "You lost the bet! Now fight for your life!"}}},
				{ID: "intimidate", Text: "Intimidate them", Requirement: &Requirement{Kind: RequirementStat, Stat: "defense", Amount: 20},
					Effect: Effect{Kind: EffectText, Message: "They see your gear and back down nervously."}},
			},
		},
		{
			ID: "evt_meteorite", Type: EventTypeNarrative, Title: "Fallen Star",
			Description: "A small, smoking crater contains a pulsating, otherworldly metal.",
			Choices: []EventChoice{
				{ID: "touch", Text: "Touch the meteorite", Effect: Effect{Kind: EffectDamage, Amount: 40, Message: "It's burning hot and radiates strange energy!"}},
				{ID: "mine", Text: "Mine it with a pickaxe", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_pickaxe", ItemName: "Iron Pickaxe"},
					Effect: Effect{Kind: EffectItem, ItemID: "mat_starmetal", Chance: chance(1.0)}},
				{ID: "observe", Text: "Observe from a safe distance", Effect: Effect{Kind: EffectXP, Amount: 60, Message: "You note its properties without getting too close."}},
			},
		},
		{
			ID: "evt_fishing_spot", Type: EventTypeGathering, Title: "Quiet Fishing Spot",
			Description: "A tranquil pond seems teeming with fish.",
			Choices: []EventChoice{
				{ID: "fish_rod", Text: "Use a Fishing Rod", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_fishing_rod", ItemName: "Fishing Rod"},
					Effect: Effect{Kind: EffectItem, ItemID: "mat_fish", Chance: chance(0.8),
						Fail: &Effect{Kind: EffectText, Message: "The fish aren't biting."}}},
				{ID: "fish_hands", Text: "Try to catch one by hand", Effect: Effect{Kind: EffectItem, ItemID: "mat_fish", Chance: chance(0.1),
					Fail: &Effect{Kind: EffectText, Message: "They're too fast!"}}},
				{ID: "skip_stone", Text: "Skip a stone", Effect: Effect{Kind: EffectText, Message: "Plip... plip... plip. That was relaxing."}},
			},
		},
		{
			ID: "evt_spider_grove", Type: EventTypeGathering, Title: "Spider-Infested Grove",
			Description: "Thick, sticky webs cover everything here. You can see valuable silk.",
			Choices: []EventChoice{
				{ID: "burn", Text: "Burn the webs (Requires Torch)", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_torch", ItemName: "Torch", Consume: true},
					Effect: Effect{Kind: EffectItem, ItemID: "mat_silk", Chance: chance(1.0), Message: "The webs burn away, leaving pristine silk."}},
				{ID: "cut", Text: "Cut through with a weapon", Effect: Effect{Kind: EffectItem, ItemID: "mat_silk", Chance: chance(0.5),
					Fail: &Effect{Kind: EffectCombat, EnemyRarity: RarityUncommon, Message: "A giant spider descends to protect its web!"}}},
				{ID: "avoid", Text: "Avoid this place", Effect: Effect{Kind: EffectText, Message: "You're not a fan of spiders."}},
			},
		},
		{
			ID: "evt_sunken_ruins", Type: EventTypeGathering, Title: "Sunken Ruins",
			Description: "The top of an old tower juts out from a murky lake. There might be treasure below.",
			Choices: []EventChoice{
				{ID: "dive", Text: "Dive for treasure", Effect: Effect{Kind: EffectItem, Rarity: RarityRare, Chance: chance(0.3),
					Fail: &Effect{Kind: EffectDamage, Amount: 20, Message: "You ran out of air and hit your head."}}},
				{ID: "fish", Text: "Fish near the ruins", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_fishing_rod", ItemName: "Fishing Rod"},
					Effect: Effect{Kind: EffectItem, ItemID: "item_old_boot", Chance: chance(0.5),
						Fail: &Effect{Kind: EffectText, Message: "Nothing seems to be biting."}}},
				{ID: "leave", Text: "Too dangerous", Effect: Effect{Kind: EffectText, Message: "The water looks cold and unwelcoming."}},
			},
		},
		{
			ID: "evt_crystal_cave", Type: EventTypeGathering, Title: "Crystal Cave",
			Description: "A cave whose walls are lined with faintly glowing, fist-sized crystals.",
			Choices: []EventChoice{
				{ID: "mine", Text: "Mine a crystal", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_pickaxe", ItemName: "Iron Pickaxe"},
					Effect: Effect{Kind: EffectItem, ItemID: "mat_crystal", Chance: chance(1.0)}},
				{ID: "absorb", Text: "Absorb the energy", Effect: Effect{Kind: EffectHeal, Amount: 50, Chance: chance(0.7),
					Fail: &Effect{Kind: EffectDamage, Amount: 10, Message: "The energy is unstable and hurts you."}}},
				{ID: "leave", Text: "Leave the cave", Effect: Effect{Kind: EffectText, Message: "You leave the beautiful cave untouched."}},
			},
		},
		{
			ID: "evt_battlefield", Type: EventTypeNarrative, Title: "Ancient Battlefield",
			Description: "You walk across a field littered with rusted swords and broken shields from a long-forgotten battle.",
			Choices: []EventChoice{
				{ID: "scavenge", Text: "Scavenge for usable gear", Effect: Effect{Kind: EffectItem, Rarity: RarityCommon, Chance: chance(0.4),
					Fail: &Effect{Kind: EffectCombat, EnemyRarity: RarityUncommon, Message: "The spirit of a fallen soldier rises to defend this ground!"}}},
				{ID: "respects", Text: "Pay respects to the fallen", Effect: Effect{Kind: EffectXP, Amount: 100, Message: "A brief moment of silence for the dead."}},
				{ID: "search_bodies", Text: "Search the bodies for gold", Effect: Effect{Kind: EffectGold, Amount: 30, Chance: chance(0.6),
					Fail: &Effect{Kind: EffectText, Message: "You find nothing but dust and bones."}}},
			},
		},
		{
			ID: "evt_troll_bridge", Type: EventTypeNarrative, Title: "Toll Bridge",
			Description: "A grumpy troll blocks a sturdy-looking bridge. 'Toll! 25 gold to cross!' he grunts.",
			Choices: []EventChoice{
				{ID: "pay", Text: "Pay the 25G toll", Requirement: &Requirement{Kind: RequirementGold, Amount: 25},
					Effect: Effect{Kind: EffectText, Message: "The troll lets you pass with a grumble."}},
				{ID: "riddle", Text: "Answer a riddle instead", Effect: Effect{Kind: EffectXP, Amount: 150, Chance: chance(0.5),
					Message: "You answer correctly! The troll is impressed and lets you pass.",
					Fail:    &Effect{Kind: EffectText, Message: "'Wrong!' The troll forces you to take the long way around."}}},
				{ID: "fight", Text: "Fight the troll", Effect: Effect{Kind: EffectCombat, EnemyRarity: RarityRare, Message: "The troll cracks his knuckles and readies his club."}},
			},
		},
		{
			ID: "evt_bard", Type: EventTypeNarrative, Title: "Traveling Bard",
			Description: "A cheerful bard with a lute offers to play you a song for a few coins.",
			Choices: []EventChoice{
				{ID: "pay", Text: "Pay 10G for a song", Requirement: &Requirement{Kind: RequirementGold, Amount: 10},
					Effect: Effect{Kind: EffectXP, Amount: 50, Message: "The song is inspiring and lifts your spirits."}},
				{ID: "request", Text: "Request a tale of heroes", Effect: Effect{Kind: EffectXP, Amount: 75, Message: "The bard tells a grand story of a legendary warrior."}},
				{ID: "ignore", Text: "Ignore him", Effect: Effect{Kind: EffectText, Message: "You're not in the mood for music."}},
			},
		},
		{
			ID: "evt_cursed_idol", Type: EventTypeNarrative, Title: "Cursed Idol",
			Description: "A small, grotesque idol sits on a pedestal. It seems to watch you.",
			Choices: []EventChoice{
				{ID: "take", Text: "Take the idol", Effect: Effect{Kind: EffectItem, ItemID: "item_cursed_idol", Chance: chance(1.0),
					Message: "You pocket the idol. You feel a chill run down your spine."}},
				{ID: "destroy", Text: "Destroy it", Effect: Effect{Kind: EffectCombat, EnemyRarity: RarityRare, Message: "As the idol shatters, a vengeful spirit emerges!"}},
				{ID: "pray", Text: "Pray to it", Effect: Effect{Kind: EffectGold, Amount: 100, Chance: chance(0.1),
					Fail: &Effect{Kind: EffectDamage, Amount: 30, Message: "The idol demands a blood sacrifice... from you!"}}},
			},
		},
		{
			ID: "evt_apiary", Type: EventTypeGathering, Title: "Wild Apiary",
			Description: "A huge beehive hangs from a thick branch, buzzing loudly. It's dripping with honey.",
			Choices: []EventChoice{
				{ID: "harvest", Text: "Try to harvest honey", Effect: Effect{Kind: EffectItem, ItemID: "mat_honey", Chance: chance(0.4),
					Fail: &Effect{Kind: EffectDamage, Amount: 20, Message: "The bees swarm and sting you relentlessly!"}}},
				{ID: "smoke", Text: "Smoke them out (Requires Torch)", Requirement: &Requirement{Kind: RequirementItem, ItemID: "item_torch", ItemName: "Torch", Consume: true},
					Effect: Effect{Kind: EffectItem, ItemID: "mat_honey", Chance: chance(0.9),
						Fail: &Effect{Kind: EffectText, Message: "The smoke wasn't enough and they got angry."}}},
				{ID: "leave", Text: "Leave them bee", Effect: Effect{Kind: EffectText, Message: "You decide not to risk the stings."}},
			},
		},
		{
			ID: "evt_hermit", Type: EventTypeNarrative, Title: "Hermit's Cave",
			Description: "You stumble upon a small, clean cave. An old hermit sits inside, offering you a cup of tea.",
			Choices: []EventChoice{
				{ID: "accept", Text: "Accept the tea", Effect: Effect{Kind: EffectHeal, Amount: 75, Message: "The tea is warm and rejuvenating."}},
				{ID: "ask", Text: "Ask for wisdom", Effect: Effect{Kind: EffectXP, Amount: 120, Message: "The hermit shares a cryptic but insightful piece of advice."}},
				{ID: "decline", Text: "Decline and leave", Effect: Effect{Kind: EffectText, Message: "You politely decline and continue on your journey."}},
			},
		},
	}
}
