package services

import "github.com/fitlog/fitlog/internal/models"

// seedExercises is the fixed reference catalog. Entries are matched by
// name on seeding, so edits here never duplicate existing rows.
var seedExercises = []models.Exercise{
	// Chest
	{Name: "Bench Press", Description: "Classic chest exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBarbell, Instructions: "Lie on bench, lower bar to chest, press up"},
	{Name: "Dumbbell Chest Press", Description: "Chest press with dumbbells", Category: models.CategoryStrength, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentDumbbell},
	{Name: "Push-ups", Description: "Bodyweight chest exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentBodyweight},
	{Name: "Incline Dumbbell Press", Description: "Upper chest focus", Category: models.CategoryStrength, MuscleGroup: models.MuscleChest, Equipment: models.EquipmentDumbbell},

	// Back
	{Name: "Deadlift", Description: "Full body compound movement", Category: models.CategoryStrength, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBarbell},
	{Name: "Pull-ups", Description: "Bodyweight back exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBodyweight},
	{Name: "Barbell Row", Description: "Back thickness builder", Category: models.CategoryStrength, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentBarbell},
	{Name: "Lat Pulldown", Description: "Machine back exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleBack, Equipment: models.EquipmentMachine},

	// Legs
	{Name: "Squat", Description: "King of leg exercises", Category: models.CategoryStrength, MuscleGroup: models.MuscleLegs, Equipment: models.EquipmentBarbell},
	{Name: "Leg Press", Description: "Machine leg exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleLegs, Equipment: models.EquipmentMachine},
	{Name: "Romanian Deadlift", Description: "Hamstring focus", Category: models.CategoryStrength, MuscleGroup: models.MuscleLegs, Equipment: models.EquipmentBarbell},
	{Name: "Lunges", Description: "Unilateral leg exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleLegs, Equipment: models.EquipmentDumbbell},
	{Name: "Leg Curl", Description: "Hamstring isolation", Category: models.CategoryStrength, MuscleGroup: models.MuscleLegs, Equipment: models.EquipmentMachine},
	{Name: "Calf Raises", Description: "Calf muscle exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleLegs, Equipment: models.EquipmentMachine},

	// Shoulders
	{Name: "Overhead Press", Description: "Shoulder builder", Category: models.CategoryStrength, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentBarbell},
	{Name: "Dumbbell Shoulder Press", Description: "Dumbbell overhead press", Category: models.CategoryStrength, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentDumbbell},
	{Name: "Lateral Raises", Description: "Side delt focus", Category: models.CategoryStrength, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentDumbbell},
	{Name: "Face Pulls", Description: "Rear delt exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleShoulders, Equipment: models.EquipmentCable},

	// Arms
	{Name: "Barbell Curl", Description: "Bicep builder", Category: models.CategoryStrength, MuscleGroup: models.MuscleArms, Equipment: models.EquipmentBarbell},
	{Name: "Tricep Dips", Description: "Tricep exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleArms, Equipment: models.EquipmentBodyweight},
	{Name: "Hammer Curls", Description: "Neutral grip curls", Category: models.CategoryStrength, MuscleGroup: models.MuscleArms, Equipment: models.EquipmentDumbbell},
	{Name: "Tricep Pushdown", Description: "Cable tricep exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleArms, Equipment: models.EquipmentCable},

	// Core
	{Name: "Plank", Description: "Core stability", Category: models.CategoryStrength, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight},
	{Name: "Russian Twists", Description: "Oblique exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight},
	{Name: "Leg Raises", Description: "Lower ab exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentBodyweight},
	{Name: "Cable Crunches", Description: "Weighted ab exercise", Category: models.CategoryStrength, MuscleGroup: models.MuscleCore, Equipment: models.EquipmentCable},

	// Cardio
	{Name: "Running", Description: "Cardiovascular exercise", Category: models.CategoryCardio, MuscleGroup: models.MuscleCardio, Equipment: models.EquipmentBodyweight},
	{Name: "Cycling", Description: "Low impact cardio", Category: models.CategoryCardio, MuscleGroup: models.MuscleCardio, Equipment: models.EquipmentMachine},
	{Name: "Rowing Machine", Description: "Full body cardio", Category: models.CategoryCardio, MuscleGroup: models.MuscleFullBody, Equipment: models.EquipmentMachine},
	{Name: "Jump Rope", Description: "High intensity cardio", Category: models.CategoryCardio, MuscleGroup: models.MuscleCardio, Equipment: models.EquipmentOther},
}
