package vectors

// Point is the method set shared by Vec2, Vec3 and Vec4 that the generic
// geometry types are written against. XYZ and WithXYZ expose the 3D part so
// spatial transforms can run on any dimension; Vec4 keeps its W.
type Point[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	Dot(V) float64
	Length() float64
	Equal(V) bool
	IsZero() bool
	String() string
	XYZ() Vec3
	WithXYZ(Vec3) V
}

var (
	_ Point[Vec2] = Vec2{}
	_ Point[Vec3] = Vec3{}
	_ Point[Vec4] = Vec4{}
)
