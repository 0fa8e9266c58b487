// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

// DemoPassword is shared by every demo account.
const DemoPassword = "password"

type userSeed struct {
	Username string
	Email    string
}

type pokemonSeed struct {
	Name          string
	Type          string
	TypeSecondary string
	Region        string
	Category      string
	Description   string
}

type reviewSeed struct {
	Username string
	Pokemon  string
	Rating   int
	Title    string
	Body     string
}

type imageSeed struct {
	Username string
	Pokemon  string
	URL      string
}

type listSeed struct {
	Username    string
	Name        string
	Description string
	Pokemon     []string
}

var users = []userSeed{
	{"Demo", "demo@aa.io"},
	{"marnie", "marnie@aa.io"},
	{"bobbie", "bobbie@aa.io"},
	{"ash", "ash@aa.io"},
}

var pokemon = []pokemonSeed{
	{"Pikachu", "Electric", "", "Kanto", "Mouse Pokémon",
		"An Electric-type Pokémon that stores energy in its cheeks. It releases this energy when threatened."},
	{"Charizard", "Fire", "Flying", "Kanto", "Flame Pokémon",
		"A powerful Fire/Flying-type Pokémon that can melt boulders with its flames."},
	{"Blastoise", "Water", "", "Kanto", "Shellfish Pokémon",
		"A Water-type Pokémon with powerful water cannons that can blast through steel."},
	{"Venusaur", "Grass", "Poison", "Kanto", "Seed Pokémon",
		"A Grass/Poison-type Pokémon with a large flower on its back that releases a soothing fragrance."},
	{"Gengar", "Ghost", "Poison", "Kanto", "Shadow Pokémon",
		"A mischievous Ghost/Poison-type Pokémon that hides in shadows and loves to play pranks."},
	{"Dragonite", "Dragon", "Flying", "Johto", "Dragon Pokémon",
		"A rare Dragon/Flying-type Pokémon known for its intelligence and ability to fly faster than sound."},
}

var reviews = []reviewSeed{
	{"Demo", "Pikachu", 5, "Absolutely shocking experience!",
		"Pikachu was incredibly energetic and friendly. The electric atmosphere was amazing!"},
	{"marnie", "Pikachu", 4, "Cute but crowded",
		"Pikachu is adorable as expected, but the location was quite crowded with other trainers. Still, the experience was electrifying!"},
	{"Demo", "Charizard", 5, "Fire-breathing excellence!",
		"Charizard was majestic and powerful. Watching Charizard fly was an unforgettable experience."},
	{"bobbie", "Blastoise", 4, "Water you waiting for?",
		"Blastoise was impressive with those water cannons! It can get a bit wet. Bring a towel!"},
	{"marnie", "Venusaur", 5, "Nature at its finest",
		"Venusaur's garden is absolutely beautiful. The aroma from the flower is so calming."},
	{"ash", "Gengar", 4, "Spooky but fun",
		"Gengar was definitely spooky but in a fun way! Just don't go alone at night!"},
	{"bobbie", "Dragonite", 5, "Dragon master experience",
		"Dragonite was incredible! So intelligent and graceful."},
	{"Demo", "Blastoise", 3, "Good but pricey",
		"Blastoise is great, but the gym charges quite a bit for entry."},
}

const artworkBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/"

var images = []imageSeed{
	{"Demo", "Pikachu", artworkBase + "25.png"},
	{"marnie", "Charizard", artworkBase + "6.png"},
	{"bobbie", "Blastoise", artworkBase + "9.png"},
	{"Demo", "Venusaur", artworkBase + "3.png"},
	{"ash", "Gengar", artworkBase + "94.png"},
	{"marnie", "Dragonite", artworkBase + "149.png"},
}

var lists = []listSeed{
	{"Demo", "My Favorite Electric Types", "A collection of the best electric Pokemon I've encountered", []string{"Pikachu"}},
	{"Demo", "Starter Pokemon Collection", "All the starter Pokemon from different regions", []string{"Charizard", "Blastoise", "Venusaur"}},
	{"marnie", "Fire Type Masters", "The hottest fire type Pokemon around", []string{"Charizard"}},
	{"bobbie", "Water Adventures", "Best water Pokemon for aquatic adventures", []string{"Blastoise", "Dragonite"}},
	{"ash", "Ghostly Encounters", "Spooky ghost type Pokemon I've met", []string{"Gengar"}},
}
