package scene

import (
	"math"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/geometry"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/material"
)

// NewDioramaScene builds the cherry-blossom diorama: grass terraces cut
// by a river, two blossoming trees, a plank bridge over the water, and
// a lamp post capped with a glowstone block that lights up at night.
func NewDioramaScene(cycle daycycle.Source) *Scene {
	s := NewScene(cycle)

	grass := material.NewDiffuse(core.NewVec3(0.13, 0.55, 0.13))
	wood := material.NewDiffuse(core.NewVec3(0.63, 0.32, 0.18))
	plank := material.NewDiffuse(core.NewVec3(0.55, 0.41, 0.24))
	blossom := material.NewDiffuse(core.NewVec3(1.0, 0.71, 0.76))
	water := material.NewRefractive(core.NewVec3(0.55, 0.68, 0.90), 1.33)
	stone := material.NewReflective(core.NewVec3(0.75, 0.75, 0.78), 0.5)
	glowstone := material.NewEmissive(
		core.NewVec3(1.0, 0.84, 0.0),  // albedo under daylight
		core.NewVec3(1.0, 0.87, 0.35), // emitted color
		1.2,
	)

	// Grass terraces either side of the river channel
	s.addVoxelGrid(core.NewVec3(-10, -5.5, -10), core.NewVec3(-2, 0, 10), 3.75, grass)
	s.addVoxelGrid(core.NewVec3(2, -5.5, -10), core.NewVec3(10, 0, 10), 3.75, grass)
	s.addVoxelGrid(core.NewVec3(-2, -5.5, -10), core.NewVec3(2, -2.75, 10), 3.75, grass)

	// River filling the channel
	s.addVoxelGrid(core.NewVec3(-2, -3, -10), core.NewVec3(2, -0.5, 10), 3.75, water)

	// Hill on the left bank
	s.addVoxelGrid(core.NewVec3(-10, 0, -10), core.NewVec3(-3, 3, -2), 3.75, grass)

	// First tree: trunk and two blossom tiers
	s.addVoxelGrid(core.NewVec3(-7.5, -1, -7.5), core.NewVec3(-5.5, 7, -5.5), 3.75, wood)
	s.addVoxelGrid(core.NewVec3(-9.5, 7, -9.5), core.NewVec3(-3.5, 9.75, -3.5), 3.75, blossom)
	s.addVoxelGrid(core.NewVec3(-8.5, 9.75, -8.5), core.NewVec3(-4.5, 12.5, -4.5), 3.75, blossom)

	// Second tree
	s.addVoxelGrid(core.NewVec3(6.5, -1, 6.5), core.NewVec3(8.5, 5, 8.5), 3.75, wood)
	s.addVoxelGrid(core.NewVec3(4.5, 5, 4.5), core.NewVec3(10.5, 7.75, 10.5), 3.75, blossom)
	s.addVoxelGrid(core.NewVec3(5.5, 7.75, 5.5), core.NewVec3(9.5, 10.5, 9.5), 3.75, blossom)

	// Plank bridge across the river
	s.addVoxelGrid(core.NewVec3(-5, 0, 1), core.NewVec3(5, 1, 3), 3.75, plank)

	// Lamp post with a glowstone block on top
	s.addVoxelGrid(core.NewVec3(6.5, 0, -8), core.NewVec3(7, 5, -7), 3.75, wood)
	s.addVoxelGrid(core.NewVec3(5.5, 5, -8.5), core.NewVec3(8.5, 7.75, -5.75), 3.75, glowstone)
	s.AddGlow(core.NewVec3(7, 6.375, -7.125), core.NewVec3(1.0, 0.87, 0.0), 6.0)

	// Polished shrine orb on the hilltop
	s.AddChecked(geometry.NewSphere(core.NewVec3(-6.5, 4.2, -6.0), 1.2, stone))

	s.Finalize()
	return s
}

// addVoxelGrid fills the box [gridMin, gridMax] with axis-aligned voxel
// cubes of the given size, clamping the last cell on each axis to the
// grid bounds. Degenerate cells are excluded with a diagnostic.
func (s *Scene) addVoxelGrid(gridMin, gridMax core.Vec3, voxelSize float64, mat *material.Material) {
	xSteps := int(math.Ceil((gridMax.X - gridMin.X) / voxelSize))
	ySteps := int(math.Ceil((gridMax.Y - gridMin.Y) / voxelSize))
	zSteps := int(math.Ceil((gridMax.Z - gridMin.Z) / voxelSize))

	for i := 0; i < xSteps; i++ {
		for j := 0; j < ySteps; j++ {
			for k := 0; k < zSteps; k++ {
				cellMin := core.NewVec3(
					gridMin.X+float64(i)*voxelSize,
					gridMin.Y+float64(j)*voxelSize,
					gridMin.Z+float64(k)*voxelSize,
				)
				cellMax := core.NewVec3(
					math.Min(cellMin.X+voxelSize, gridMax.X),
					math.Min(cellMin.Y+voxelSize, gridMax.Y),
					math.Min(cellMin.Z+voxelSize, gridMax.Z),
				)
				s.AddChecked(geometry.NewBox(cellMin, cellMax, mat))
			}
		}
	}
}
