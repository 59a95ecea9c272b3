package components

// TransformComponent is a world position. The world origin is the screen
// center and +Y points up.
type TransformComponent struct {
	X float64
	Y float64
}

// CameraComponent marks the 2D camera entity. The render system centers the
// world origin on the screen at (X, Y) world coordinates of the camera's
// transform.
type CameraComponent struct {
	Zoom float64
}
