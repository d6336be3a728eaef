package leetcode

import (
	"errors"
	"fmt"
	"math"
)

// ErrUserNotFound is returned when the endpoint reports no user for the
// requested username (matchedUser is null).
var ErrUserNotFound = errors.New("user not found")

// Stats is the solve-count and ranking summary for one user.
type Stats struct {
	Username       string        `json:"username" yaml:"username"`
	Ranking        int           `json:"ranking" yaml:"ranking"`
	TotalSolved    int           `json:"total_solved" yaml:"total_solved"`
	EasySolved     int           `json:"easy_solved" yaml:"easy_solved"`
	MediumSolved   int           `json:"medium_solved" yaml:"medium_solved"`
	HardSolved     int           `json:"hard_solved" yaml:"hard_solved"`
	AcceptanceRate float64       `json:"acceptance_rate" yaml:"acceptance_rate"`
	Contest        *ContestStats `json:"contest,omitempty" yaml:"contest,omitempty"`
}

// ContestStats holds contest results. It is nil on Stats when the user has
// never attended a contest.
type ContestStats struct {
	Rating        float64  `json:"rating" yaml:"rating"`
	Attended      int      `json:"attended" yaml:"attended"`
	TopPercentage *float64 `json:"top_percentage,omitempty" yaml:"top_percentage,omitempty"`
}

// Wire types mirroring the GraphQL payload under "data".
type profileData struct {
	MatchedUser    *matchedUser    `json:"matchedUser"`
	ContestRanking *contestRanking `json:"userContestRanking"`
}

type matchedUser struct {
	Username    string `json:"username"`
	SubmitStats struct {
		Accepted []submissionRow `json:"acSubmissionNum"`
		Total    []submissionRow `json:"totalSubmissionNum"`
	} `json:"submitStats"`
	Profile struct {
		Ranking    int     `json:"ranking"`
		Reputation int     `json:"reputation"`
		StarRating float64 `json:"starRating"`
	} `json:"profile"`
}

type submissionRow struct {
	Difficulty  string `json:"difficulty"`
	Count       int    `json:"count"`
	Submissions int    `json:"submissions"`
}

type contestRanking struct {
	AttendedContestsCount int      `json:"attendedContestsCount"`
	Rating                float64  `json:"rating"`
	GlobalRanking         int      `json:"globalRanking"`
	TopPercentage         *float64 `json:"topPercentage"`
}

// parseStats flattens the wire payload into a Stats record.
func parseStats(username string, data *profileData) (*Stats, error) {
	user := data.MatchedUser
	if user == nil {
		return nil, fmt.Errorf("leetcode user %q: %w", username, ErrUserNotFound)
	}

	stats := &Stats{
		Username: user.Username,
		Ranking:  user.Profile.Ranking,
	}

	for _, row := range user.SubmitStats.Accepted {
		switch row.Difficulty {
		case "All":
			stats.TotalSolved = row.Count
		case "Easy":
			stats.EasySolved = row.Count
		case "Medium":
			stats.MediumSolved = row.Count
		case "Hard":
			stats.HardSolved = row.Count
		}
	}

	stats.AcceptanceRate = acceptanceRate(user.SubmitStats.Accepted, user.SubmitStats.Total)

	if contest := data.ContestRanking; contest != nil {
		stats.Contest = &ContestStats{
			Rating:   math.Round(contest.Rating*100) / 100,
			Attended: contest.AttendedContestsCount,
		}
		if contest.TopPercentage != nil {
			pct := math.Round(*contest.TopPercentage*100) / 100
			stats.Contest.TopPercentage = &pct
		}
	}

	return stats, nil
}

// acceptanceRate computes accepted/total submissions for the "All" row as a
// percentage rounded to one decimal. Returns 0 when the user has no
// submissions or the endpoint omits the totals.
func acceptanceRate(accepted, total []submissionRow) float64 {
	var acSubs, totalSubs int
	for _, row := range accepted {
		if row.Difficulty == "All" {
			acSubs = row.Submissions
		}
	}
	for _, row := range total {
		if row.Difficulty == "All" {
			totalSubs = row.Submissions
		}
	}
	if totalSubs == 0 {
		return 0
	}
	return math.Round(float64(acSubs)/float64(totalSubs)*1000) / 10
}
