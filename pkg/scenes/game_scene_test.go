package scenes

import (
	"bytes"
	"image"
	"image/png"
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/gameplay"
)

const testResources = `
version: "1.0"
base_path: assets
groups:
  init:
    images:
      - {id: IMAGE_MENU, path: images/menu.png}
      - {id: IMAGE_BACKGROUND1, path: images/lvl1.png}
      - {id: IMAGE_BACKGROUND2, path: images/lvl2.png}
      - {id: IMAGE_BACKGROUND3, path: images/lvl3.png}
      - {id: IMAGE_ROCK, path: images/rock.png}
      - {id: IMAGE_ALIEN, path: images/alien.png}
`

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func newTestResourceManager(t *testing.T, withImages bool) *game.ResourceManager {
	t.Helper()
	fsys := fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testResources)},
	}
	if withImages {
		for _, name := range []string{"menu", "lvl1", "lvl2", "lvl3", "rock", "alien"} {
			fsys["assets/images/"+name+".png"] = &fstest.MapFile{Data: tinyPNG(t)}
		}
	}

	rm := game.NewResourceManager(fsys)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	return rm
}

func newTestScene(t *testing.T, opts GameSceneOptions) *GameScene {
	t.Helper()
	s, err := NewGameScene(newTestResourceManager(t, true), config.DefaultGameplayConfig(), opts)
	if err != nil {
		t.Fatalf("NewGameScene failed: %v", err)
	}
	return s
}

var (
	spaceUp = []gameplay.KeyEvent{{Key: gameplay.KeyConfirm, Action: gameplay.KeyReleased}}
	tapUp   = []gameplay.PointerEvent{{Action: gameplay.PointerReleased, X: 960, Y: 540}}
	frameDT = config.FixedDeltaTime()
)

var (
	noKeys   []gameplay.KeyEvent
	noPoints []gameplay.PointerEvent
)

func TestNewGameSceneMissingImages(t *testing.T) {
	_, err := NewGameScene(newTestResourceManager(t, false), config.DefaultGameplayConfig(), GameSceneOptions{})
	if err == nil {
		t.Fatal("expected error when init images are missing")
	}
}

func TestNewGameSceneBackground(t *testing.T) {
	s := newTestScene(t, GameSceneOptions{Rand: rand.New(rand.NewPCG(1, 2))})

	valid := map[string]bool{
		"IMAGE_BACKGROUND1": true,
		"IMAGE_BACKGROUND2": true,
		"IMAGE_BACKGROUND3": true,
	}
	if !valid[s.Background()] {
		t.Errorf("unexpected background %q", s.Background())
	}
	if s.Name() != "GameScene" {
		t.Errorf("Name() = %q", s.Name())
	}
	if s.Controller().State() != gameplay.SceneMenu {
		t.Errorf("initial state = %s, want Menu", s.Controller().State())
	}
}

func TestPickBackground(t *testing.T) {
	if got := pickBackground(nil, nil); got != defaultBackgroundImage {
		t.Errorf("pickBackground(nil) = %q, want %q", got, defaultBackgroundImage)
	}

	ids := []string{"IMAGE_BACKGROUND1", "IMAGE_BACKGROUND2", "IMAGE_BACKGROUND3"}
	seen := make(map[string]bool)
	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 200; i++ {
		seen[pickBackground(ids, r)] = true
	}
	if len(seen) != len(ids) {
		t.Errorf("expected every background to be picked eventually, got %v", seen)
	}
}

func TestStepSpaceAdvancesStates(t *testing.T) {
	s := newTestScene(t, GameSceneOptions{})

	s.step(spaceUp, noPoints, frameDT)
	if s.Controller().State() != gameplay.SceneTutorial {
		t.Fatalf("state = %s, want Tutorial", s.Controller().State())
	}
	s.step(spaceUp, noPoints, frameDT)
	if s.Controller().State() != gameplay.ScenePlaying {
		t.Fatalf("state = %s, want Playing", s.Controller().State())
	}
}

func TestStepTapToContinue(t *testing.T) {
	tests := []struct {
		name string
		tap  bool
		want gameplay.SceneState
	}{
		{"desktop ignores taps outside play", false, gameplay.SceneMenu},
		{"touch tap advances", true, gameplay.SceneTutorial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t, GameSceneOptions{TapToContinue: tt.tap})
			s.step(noKeys, tapUp, frameDT)
			if got := s.Controller().State(); got != tt.want {
				t.Errorf("state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStepTapDoesNotFireOnEnteringPlay(t *testing.T) {
	s := newTestScene(t, GameSceneOptions{TapToContinue: true})
	s.step(noKeys, tapUp, frameDT) // Menu -> Tutorial
	s.step(noKeys, tapUp, frameDT) // Tutorial -> Playing

	if s.Controller().State() != gameplay.ScenePlaying {
		t.Fatalf("state = %s, want Playing", s.Controller().State())
	}
	if s.Controller().Projectile().InFlight {
		t.Error("the release that starts the round must not launch the projectile")
	}

	// 游戏中点击不会推进状态
	s.step(noKeys, tapUp, frameDT)
	if s.Controller().State() != gameplay.ScenePlaying {
		t.Errorf("tap during play changed state to %s", s.Controller().State())
	}
}

func TestStepDragAndFire(t *testing.T) {
	s := newTestScene(t, GameSceneOptions{})
	s.step(spaceUp, noPoints, frameDT)
	s.step(spaceUp, noPoints, frameDT)

	anchor := s.Controller().Anchor()
	grab := anchor.Add(gameplay.Vec2{X: 16, Y: 16})
	pull := grab.Add(gameplay.Vec2{X: -100, Y: 80})

	s.step(noKeys, []gameplay.PointerEvent{{Action: gameplay.PointerPressed, X: grab.X, Y: grab.Y}}, frameDT)
	if !s.Controller().Projectile().Grabbed {
		t.Fatal("projectile should be grabbed")
	}

	s.step(noKeys, []gameplay.PointerEvent{
		{Action: gameplay.PointerMoved, X: pull.X, Y: pull.Y},
		{Action: gameplay.PointerReleased, X: pull.X, Y: pull.Y},
	}, frameDT)

	p := s.Controller().Projectile()
	if !p.InFlight {
		t.Fatal("projectile should be in flight after release")
	}
	if p.Velocity.X <= 0 || p.Velocity.Y >= 0 {
		t.Errorf("pulling down-left should launch up-right, got velocity %+v", p.Velocity)
	}
}
