package gamification

import "eventconnect/models"

// UserLevels is the canonical level ladder, ascending by threshold. The
// ladder is sparse: level numbers between entries are not distinct tiers.
var UserLevels = []models.UserLevel{
	{Level: 1, Title: "Explorador", PointsRequired: 0, Benefits: []string{"Acceso a eventos públicos"}},
	{Level: 2, Title: "Aventurero", PointsRequired: 50, Benefits: []string{"Insignia de perfil"}},
	{Level: 3, Title: "Entusiasta", PointsRequired: 150, Benefits: []string{"Acceso anticipado a eventos destacados"}},
	{Level: 5, Title: "Influencer", PointsRequired: 500, Benefits: []string{"Eventos exclusivos", "Perfil destacado"}},
	{Level: 10, Title: "Embajador", PointsRequired: 1500, Benefits: []string{"Entradas prioritarias", "Soporte dedicado"}},
	{Level: 20, Title: "Leyenda", PointsRequired: 5000, Benefits: []string{"Todos los beneficios", "Invitaciones VIP"}},
}

// LevelForPoints returns the highest level whose threshold the points reach.
// Points below the first threshold still map to level 1.
func LevelForPoints(points int) models.UserLevel {
	current := UserLevels[0]
	for _, lvl := range UserLevels {
		if lvl.PointsRequired <= points {
			current = lvl
		} else {
			break
		}
	}
	return current
}

// NextLevel returns the next rung above the given points, or nil at the top.
func NextLevel(points int) *models.UserLevel {
	for i := range UserLevels {
		if UserLevels[i].PointsRequired > points {
			next := UserLevels[i]
			return &next
		}
	}
	return nil
}
