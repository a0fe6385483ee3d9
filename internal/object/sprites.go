package object

import "github.com/tomz197/spaceship/internal/draw"

var (
	playerSprite = draw.NewSprite(
		"...##...",
		"...##...",
		"..####..",
		".######.",
		"########",
		"##.##.##",
	)
	playerRocketSprite = draw.NewSprite(
		"...##...",
		"..####..",
		".######.",
		"########",
		"##.##.##",
		".#.##.#.",
	)

	enemySprites = []*draw.Sprite{
		draw.NewSprite(
			"#.####.#",
			"########",
			".######.",
			"..####..",
			"...##...",
			"...##...",
		),
		draw.NewSprite(
			"##....##",
			"########",
			"##.##.##",
			".######.",
			"..#..#..",
			"...##...",
		),
		draw.NewSprite(
			".######.",
			"##.##.##",
			"########",
			"#.#..#.#",
			"..#..#..",
			"...##...",
		),
		draw.NewSprite(
			"#......#",
			"##.##.##",
			"########",
			".######.",
			"#.####.#",
			"...##...",
		),
	}

	explosionSprites = []*draw.Sprite{
		draw.NewSprite(
			"........",
			"........",
			"...##...",
			"...##...",
			"........",
			"........",
		),
		draw.NewSprite(
			"........",
			"..#..#..",
			"...##...",
			"..####..",
			"..#..#..",
			"........",
		),
		draw.NewSprite(
			"#..#...#",
			".#...#..",
			"...#..#.",
			"#.#.....",
			"..#..#.#",
			"#...#..#",
		),
	}

	lifeSprite = draw.NewSprite(
		".#.",
		"###",
		"#.#",
	)
	lostLifeSprite = draw.NewSprite(
		".#.",
		"#.#",
		"...",
	)
)
