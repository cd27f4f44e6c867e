package models

// MeasuredMoveStatus describes where price currently sits relative to a
// measured move's stop, target, and C pivot. It is derived fresh on every
// detection pass, never persisted.
type MeasuredMoveStatus string

const (
	MoveForming    MeasuredMoveStatus = "forming"
	MoveActive     MeasuredMoveStatus = "active"
	MoveTargetHit  MeasuredMoveStatus = "target_hit"
	MoveStoppedOut MeasuredMoveStatus = "stopped_out"
)

// MeasuredMove is an AB=CD pattern candidate built from three alternating
// swing points, projecting a fourth point D one AB-length beyond C.
type MeasuredMove struct {
	Direction        Direction          `json:"direction"`
	PointA           SwingPoint         `json:"point_a"`
	PointB           SwingPoint         `json:"point_b"`
	PointC           SwingPoint         `json:"point_c"`
	ProjectedD       float64            `json:"projected_d"`
	RetracementRatio float64            `json:"retracement_ratio"`
	Entry            float64            `json:"entry"`
	Stop             float64            `json:"stop"`
	Target           float64            `json:"target"`
	Quality          float64            `json:"quality"` // 0-100, 100 at a perfect 50% retrace
	Status           MeasuredMoveStatus `json:"status"`
}
