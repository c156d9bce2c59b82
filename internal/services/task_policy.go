package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/milohq/milo/internal/models"
)

// riskTaskTable is a static lookup, not a generative algorithm: exactly two
// suggestions per tier, escalating from self-care to crisis contact.
var riskTaskTable = map[int][]string{
	1: {
		"Complete a 5-minute breathing exercise",
		"Check in with your mood for the day",
	},
	2: {
		"Try a 10-minute guided meditation",
		"Write a short journal entry about your day",
	},
	3: {
		"Practice a short mindfulness exercise",
		"Chat with Milo about what's on your mind",
	},
	4: {
		"Review your personalized support options",
		"Connect with a trusted friend or family member",
	},
	5: {
		"Contact crisis support (988) immediately",
		"Reach out to your designated emergency contact",
	},
}

// Mandatory tasks appear in every day's list regardless of which generation
// path produced the rest of it.
var mandatoryTasks = []models.DailyTask{
	{TaskKey: "mandatory_meditation", Title: "Take a 5-minute meditation break", Source: models.TaskSourceRisk},
	{TaskKey: "mandatory_journal", Title: "Write one journal entry", Source: models.TaskSourceRisk},
}

// TasksForRisk returns the two task titles for a tier, or an empty list for
// any tier outside 1..5.
func TasksForRisk(riskLevel int) []string {
	titles, ok := riskTaskTable[riskLevel]
	if !ok {
		return []string{}
	}
	result := make([]string, len(titles))
	copy(result, titles)
	return result
}

// BuildRiskTasks expands the static tier table into task records for one day.
func BuildRiskTasks(userID uint, day time.Time, riskLevel int) []models.DailyTask {
	titles := TasksForRisk(riskLevel)
	tasks := make([]models.DailyTask, 0, len(titles))
	for index, title := range titles {
		tasks = append(tasks, models.DailyTask{
			UserID:  userID,
			Date:    day,
			TaskKey: fmt.Sprintf("risk_%d", index),
			Title:   title,
			Source:  models.TaskSourceRisk,
		})
	}
	return tasks
}

// BuildPlanTasks derives task records from a wellness plan's recommended
// activities. Blank activities are skipped.
func BuildPlanTasks(userID uint, day time.Time, activities []string) []models.DailyTask {
	tasks := make([]models.DailyTask, 0, len(activities))
	for index, activity := range activities {
		title := strings.TrimSpace(activity)
		if title == "" {
			continue
		}
		tasks = append(tasks, models.DailyTask{
			UserID:  userID,
			Date:    day,
			TaskKey: fmt.Sprintf("wellness_%d", index),
			Title:   title,
			Source:  models.TaskSourcePlan,
		})
	}
	return tasks
}

// EnsureMandatoryTasks appends any missing mandatory task to the list.
// Matching is by task key so a completed mandatory task is never duplicated.
func EnsureMandatoryTasks(userID uint, day time.Time, tasks []models.DailyTask) []models.DailyTask {
	present := make(map[string]struct{}, len(tasks))
	for _, task := range tasks {
		present[task.TaskKey] = struct{}{}
	}

	for _, mandatory := range mandatoryTasks {
		if _, exists := present[mandatory.TaskKey]; exists {
			continue
		}
		task := mandatory
		task.UserID = userID
		task.Date = day
		tasks = append(tasks, task)
	}
	return tasks
}
