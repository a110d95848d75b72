package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// ResizableScene 记录尺寸变化与低功耗切换
type ResizableScene struct {
	MockScene
	resizes [][2]int
	reduced bool
}

func (r *ResizableScene) Resize(width, height int) {
	r.resizes = append(r.resizes, [2]int{width, height})
}

func (r *ResizableScene) SetReducedMotion(reduced bool) {
	r.reduced = reduced
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update/Draw/Resize handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Resize(800, 600)

	if sm.SetReducedMotion(true) {
		t.Error("SetReducedMotion should report false without a scene")
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerResize(t *testing.T) {
	tests := []struct {
		name  string
		sizes [][2]int
		want  [][2]int
	}{
		{"首次尺寸", [][2]int{{800, 600}}, [][2]int{{800, 600}}},
		{"相同尺寸去重", [][2]int{{800, 600}, {800, 600}, {800, 600}}, [][2]int{{800, 600}}},
		{"尺寸变化", [][2]int{{800, 600}, {1920, 1080}}, [][2]int{{800, 600}, {1920, 1080}}},
		{"最小化被忽略", [][2]int{{800, 600}, {0, 0}, {800, 600}}, [][2]int{{800, 600}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			scene := &ResizableScene{}
			sm.SwitchTo(scene)

			for _, s := range tt.sizes {
				sm.Resize(s[0], s[1])
			}

			if len(scene.resizes) != len(tt.want) {
				t.Fatalf("resizes = %v, want %v", scene.resizes, tt.want)
			}
			for i := range tt.want {
				if scene.resizes[i] != tt.want[i] {
					t.Errorf("resize %d = %v, want %v", i, scene.resizes[i], tt.want[i])
				}
			}
		})
	}
}

// TestSceneManagerSwitchSyncsSize 切换场景时新场景立即拿到当前尺寸
func TestSceneManagerSwitchSyncsSize(t *testing.T) {
	sm := NewSceneManager()
	sm.Resize(1280, 720)

	scene := &ResizableScene{}
	sm.SwitchTo(scene)

	if len(scene.resizes) != 1 || scene.resizes[0] != [2]int{1280, 720} {
		t.Errorf("resizes = %v, want [[1280 720]]", scene.resizes)
	}
	if w, h := sm.Size(); w != 1280 || h != 720 {
		t.Errorf("Size() = %dx%d, want 1280x720", w, h)
	}
}

func TestSceneManagerSetReducedMotion(t *testing.T) {
	sm := NewSceneManager()

	sm.SwitchTo(&MockScene{})
	if sm.SetReducedMotion(true) {
		t.Error("plain scene should not accept reduced motion")
	}

	scene := &ResizableScene{}
	sm.SwitchTo(scene)
	if !sm.SetReducedMotion(true) || !scene.reduced {
		t.Error("SetReducedMotion(true) not forwarded")
	}
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}
