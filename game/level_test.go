package game

import (
	"testing"

	"github.com/catsanzsh/ultraland/common"
)

func TestLevelWidthGrowsWithIndex(t *testing.T) {
	for n := 1; n <= common.LevelCount; n++ {
		l := NewLevel(n)
		if want := float64(640 + n*160); l.Width != want {
			t.Fatalf("level %d width = %v, want %v", n, l.Width, want)
		}
	}
}

func TestLevelConstructionIsDeterministic(t *testing.T) {
	for n := 1; n <= common.LevelCount; n++ {
		a, b := NewLevel(n), NewLevel(n)
		if len(a.Platforms) != len(b.Platforms) ||
			len(a.Enemies) != len(b.Enemies) ||
			len(a.Coins) != len(b.Coins) {
			t.Fatalf("level %d: entity counts differ between builds", n)
		}
		for i := range a.Platforms {
			if *a.Platforms[i] != *b.Platforms[i] {
				t.Fatalf("level %d platform %d differs between builds", n, i)
			}
		}
		for i := range a.Coins {
			if a.Coins[i].X != b.Coins[i].X || a.Coins[i].Y != b.Coins[i].Y {
				t.Fatalf("level %d coin %d differs between builds", n, i)
			}
		}
	}
}

func TestLevelOneLayout(t *testing.T) {
	l := NewLevel(1)

	if l.SpawnX != 20 || l.SpawnY != 100 {
		t.Fatalf("spawn = (%v,%v), want (20,100)", l.SpawnX, l.SpawnY)
	}
	if len(l.Enemies) != 2 {
		t.Fatalf("enemies = %d, want 2", len(l.Enemies))
	}
	for _, e := range l.Enemies {
		if e.Type != EnemyGround {
			t.Fatal("level 1 has only ground enemies")
		}
		if !e.Active {
			t.Fatal("enemies start active")
		}
	}
	if len(l.Coins) != 5 {
		t.Fatalf("coins = %d, want 5", len(l.Coins))
	}
}

func TestLevelGoalPlacement(t *testing.T) {
	for n := 1; n <= common.LevelCount; n++ {
		l := NewLevel(n)
		if l.Goal == nil {
			t.Fatalf("level %d has no goal", n)
		}
		if l.Goal.X != l.Width-40 {
			t.Fatalf("level %d goal x = %v, want %v", n, l.Goal.X, l.Width-40)
		}
		if l.Goal.Y != common.ScreenHeight-48 {
			t.Fatalf("level %d goal y = %v", n, l.Goal.Y)
		}
		b := l.Goal.Bounds()
		if b.Width != 16 || b.Height != 32 {
			t.Fatalf("goal bounds = %vx%v, want 16x32", b.Width, b.Height)
		}
	}
}

func TestGroundGapsBecomeMoreFrequent(t *testing.T) {
	groundTiles := func(l *Level) int {
		n := 0
		for _, p := range l.Platforms {
			if p.Y == common.ScreenHeight-16 {
				n++
			}
		}
		return n
	}

	// per 16px column, later levels keep fewer ground tiles
	l1, l5 := NewLevel(1), NewLevel(5)
	cols1 := int(l1.Width) / 16
	cols5 := int(l5.Width) / 16
	frac1 := float64(groundTiles(l1)) / float64(cols1)
	frac5 := float64(groundTiles(l5)) / float64(cols5)
	if frac5 >= frac1 {
		t.Fatalf("ground coverage should shrink: level1 %v, level5 %v", frac1, frac5)
	}

	// the spawn area is always solid
	for n := 1; n <= common.LevelCount; n++ {
		l := NewLevel(n)
		solid := 0
		for _, p := range l.Platforms {
			if p.Y == common.ScreenHeight-16 && p.X < 32 {
				solid++
			}
		}
		if solid != 2 {
			t.Fatalf("level %d spawn ground tiles = %d, want 2", n, solid)
		}
	}
}
