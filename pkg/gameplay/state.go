package gameplay

// SceneState 游戏场景状态
// 任意时刻恰好处于其中一个状态
type SceneState int

const (
	// SceneMenu 主菜单
	SceneMenu SceneState = iota
	// SceneTutorial 玩法说明
	SceneTutorial
	// ScenePlaying 游戏进行中
	ScenePlaying
	// SceneWon 胜利：所有目标被击中
	SceneWon
	// SceneLost 失败：弹药耗尽且仍有目标
	SceneLost
)

// String 返回状态名称（用于日志）
func (s SceneState) String() string {
	switch s {
	case SceneMenu:
		return "Menu"
	case SceneTutorial:
		return "Tutorial"
	case ScenePlaying:
		return "Playing"
	case SceneWon:
		return "Won"
	case SceneLost:
		return "Lost"
	default:
		return "Unknown"
	}
}
