package achievements

import "time"

func consistencyDefinitions() []Definition {
	return withCategory(CategoryConsistency, []Definition{
		def("streak_3", "Warming Up", "Work out 3 days in a row", "flame",
			RarityCommon, 20, atLeast(longestStreak, 3, "days")),
		def("streak_7", "Week Warrior", "Work out 7 days in a row", "flame",
			RarityUncommon, 50, atLeast(longestStreak, 7, "days")),
		def("streak_14", "Unbroken", "Work out 14 days in a row", "flame",
			RarityRare, 100, atLeast(longestStreak, 14, "days")),
		def("streak_30", "Iron Habit", "Work out 30 days in a row", "flame",
			RarityEpic, 250, atLeast(longestStreak, 30, "days")),
		def("streak_60", "Unstoppable", "Work out 60 days in a row", "flame",
			RarityLegendary, 500, atLeast(longestStreak, 60, "days")),

		def("weekly_streak_4", "Steady Month", "Train at least once a week for 4 weeks in a row", "calendar",
			RarityCommon, 25, atLeast(longestWeeklyStreak, 4, "weeks")),
		def("weekly_streak_12", "Quarter Committed", "Train at least once a week for 12 weeks in a row", "calendar",
			RarityUncommon, 60, atLeast(longestWeeklyStreak, 12, "weeks")),
		def("weekly_streak_26", "Half Year Strong", "Train at least once a week for 26 weeks in a row", "calendar",
			RarityRare, 120, atLeast(longestWeeklyStreak, 26, "weeks")),
		def("weekly_streak_52", "Year of Iron", "Train at least once a week for 52 weeks in a row", "calendar",
			RarityLegendary, 400, atLeast(longestWeeklyStreak, 52, "weeks")),

		def("back_on_track", "Back on Track", "Return to training after a break of 7 to 30 days", "rewind",
			RarityUncommon, 30, latestGapBetween(7, 30)),
		def("rest_day_pro", "Rest Day Pro", "Come back after exactly one rest day", "moon",
			RarityCommon, 15, latestGapBetween(2, 2)),

		def("active_months_3", "Regular", "Work out in 3 different months", "calendar-check",
			RarityCommon, 25, atLeast(activeMonths, 3, "months")),
		def("active_months_6", "Seasoned Regular", "Work out in 6 different months", "calendar-check",
			RarityUncommon, 60, atLeast(activeMonths, 6, "months")),
		def("active_months_12", "Year Rounder", "Work out in 12 different months", "calendar-check",
			RarityRare, 150, atLeast(activeMonths, 12, "months")),

		def("week_4_sessions", "Four Timer", "Complete 4 workouts in a single week", "repeat",
			RarityCommon, 25, atLeast(bestWeek(sessionOne), 4, "workouts")),
		def("week_6_sessions", "Six Pack Week", "Complete 6 workouts in a single week", "repeat",
			RarityRare, 80, atLeast(bestWeek(sessionOne), 6, "workouts")),
		def("month_12_sessions", "Busy Month", "Complete 12 workouts in a single month", "repeat",
			RarityUncommon, 50, atLeast(bestMonth(sessionOne), 12, "workouts")),
		def("month_20_sessions", "Gym Resident", "Complete 20 workouts in a single month", "repeat",
			RarityEpic, 180, atLeast(bestMonth(sessionOne), 20, "workouts")),

		def("double_session", "Two-a-Day", "Complete two workouts on the same day", "copy",
			RarityUncommon, 35, predicate(func(h *History) bool {
				return h.Len() > len(h.Days())
			})),
		def("monday_regular", "Never Skip Monday", "Complete 10 workouts on a Monday", "calendar",
			RarityCommon, 20, atLeast(countSessions(func(s SessionSummary) bool {
				return s.Weekday == time.Monday
			}), 10, "workouts")),
	})
}
