package strategy

import "fmt"

// 策略实例

type RoadStrategy struct{}

func (RoadStrategy) BuildRoute(origin, destination string) (string, error) {
	return fmt.Sprintf("Road Route from %s to %s : Drive I-95, takes 30 mins", origin, destination), nil
}

type WalkStrategy struct{}

func (WalkStrategy) BuildRoute(origin, destination string) (string, error) {
	return fmt.Sprintf("Walking from %s to %s: Walk through the park, takes 2 hours", origin, destination), nil
}

// BikeStrategy 带固定配置的策略，速度在构造时确定
type BikeStrategy struct {
	SpeedKmh float64
}

func (s BikeStrategy) BuildRoute(origin, destination string) (string, error) {
	speed := s.SpeedKmh
	if speed <= 0 {
		speed = 15
	}
	return fmt.Sprintf("Bike Route from %s to %s : Ride the river trail at %.0f km/h, takes 45 mins", origin, destination, speed), nil
}
