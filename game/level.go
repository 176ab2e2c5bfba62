package game

import (
	"math"

	"github.com/catsanzsh/ultraland/common"
)

// Level owns one stage's entities. Structure is immutable after
// construction except for coin removal and enemy active flags.
type Level struct {
	Index     int
	Platforms []*Platform
	Enemies   []*Enemy
	Coins     []*Coin
	Goal      *Goal
	Width     float64
	SpawnX    float64
	SpawnY    float64
}

// NewLevel deterministically builds the stage for a 1-based level index:
// a ground strip with index-dependent gaps, a hand-authored elevated
// layout, and a goal near the end. Levels get longer as the index grows.
func NewLevel(index int) *Level {
	l := &Level{
		Index:  index,
		Width:  float64(640 + index*160),
		SpawnX: 20,
		SpawnY: 100,
	}

	// Ground strip. gapFreq shrinks with the index, so gaps appear more
	// often in later levels; the first two tiles are always solid so the
	// spawn is safe.
	gapFreq := 6 - index
	if gapFreq < 1 {
		gapFreq = 1
	}
	for x := 0; x < int(l.Width); x += 16 {
		if x%(gapFreq*16) != 0 || x < 32 {
			l.Platforms = append(l.Platforms, &Platform{
				X: float64(x), Y: common.ScreenHeight - 16, Width: 16, Height: 16,
			})
		}
	}

	switch index {
	case 1: // introduction
		l.addPlatform(80, 100, 32, 8)
		l.addPlatform(140, 80, 24, 8)
		l.addPlatform(200, 100, 40, 8)
		l.addPlatform(280, 90, 32, 8)

		l.addEnemy(100, 92, EnemyGround)
		l.addEnemy(220, 92, EnemyGround)

		for i := 0; i < 5; i++ {
			l.addCoin(float64(80+i*40), 65)
		}

	case 2: // vertical challenge
		for i := 0; i < 8; i++ {
			y := float64(110 - (i%3)*20)
			l.addPlatform(float64(60+i*45), y, 30, 8)
			if i%2 == 0 {
				l.addEnemy(float64(65+i*45), y-8, EnemyGround)
			}
		}
		for i := 0; i < 10; i++ {
			l.addCoin(float64(70+i*35), float64(50+(i%3)*20))
		}

	case 3: // enemy gauntlet, alternating ground and flying
		for i := 0; i < 10; i++ {
			l.addPlatform(float64(50+i*50), float64(100-(i%2)*30), 35, 8)
			l.addEnemy(float64(55+i*50), float64(92-(i%2)*30), EnemyType(i%2))
		}
		for i := 0; i < 15; i++ {
			l.addCoin(float64(60+i*30), float64(40+(i%4)*15))
		}

	case 4: // precision platforming with a slow descent
		for i := 0; i < 12; i++ {
			width := float64(20 + (i%3)*5)
			l.addPlatform(float64(40+i*55), float64(120-i*3), width, 8)
			if i%3 == 0 {
				l.addEnemy(float64(45+i*55), float64(112-i*3), EnemyFlying)
			}
		}
		for i := 0; i < 20; i++ {
			l.addCoin(float64(50+i*35), 30+math.Sin(float64(i)*0.5)*20)
		}

	case 5: // final gauntlet: sine-wave platforms and a coin spiral
		for i := 0; i < 15; i++ {
			x := float64(40 + i*60)
			y := math.Floor(100 + math.Sin(float64(i)*0.8)*30)
			l.addPlatform(x, y, 25, 8)

			typ := EnemyGround
			if i%3 == 0 {
				typ = EnemyFlying
			}
			l.addEnemy(x+5, y-8, typ)
		}
		for i := 0; i < 30; i++ {
			angle := float64(i) * 0.3
			x := 300 + math.Cos(angle)*(50+float64(i)*2)
			y := 70 + math.Sin(angle)*20
			l.addCoin(math.Floor(x), math.Floor(y))
		}
	}

	l.Goal = &Goal{X: l.Width - 40, Y: common.ScreenHeight - 48}
	return l
}

func (l *Level) addPlatform(x, y, w, h float64) {
	l.Platforms = append(l.Platforms, &Platform{X: x, Y: y, Width: w, Height: h})
}

func (l *Level) addEnemy(x, y float64, typ EnemyType) {
	l.Enemies = append(l.Enemies, NewEnemy(x, y, typ))
}

func (l *Level) addCoin(x, y float64) {
	l.Coins = append(l.Coins, &Coin{X: x, Y: y})
}
