package strategy

// RouteStrategy 路径规划算法接口，运行时可整体替换
type RouteStrategy interface {
	BuildRoute(origin, destination string) (string, error)
}
