package report

import "tweetscope/internal/dataset"

// FollowStats holds median follower and following counts for one category
type FollowStats struct {
	MedianFollowers Float `json:"median_followers"`
	MedianFollowing Float `json:"median_following"`
}

// AccountBehavior is the account_behavior section
type AccountBehavior struct {
	HasAccountData bool                   `json:"has_account_data"`
	RetweetRatio   map[string]Float       `json:"retweet_ratio_by_category,omitempty"`
	FollowStats    map[string]FollowStats `json:"follow_stats_by_category,omitempty"`
}

// AccountBehaviorAnalysis groups retweet ratio and follower medians by
// account category
func AccountBehaviorAnalysis(table *dataset.Table) *AccountBehavior {
	view, err := table.View(dataset.Requirements{
		Required: []dataset.Column{dataset.AccountCategory},
		Optional: []dataset.Column{dataset.Retweet, dataset.Followers, dataset.Following},
	})
	res := &AccountBehavior{}
	if err != nil {
		return res
	}
	categories := view.Strings(dataset.AccountCategory)

	if view.Has(dataset.Retweet) {
		res.RetweetRatio = make(map[string]Float)
		for cat, values := range groupValues(categories, view.Floats(dataset.Retweet)) {
			res.RetweetRatio[cat] = Float(mean(values))
		}
		res.HasAccountData = true
	}

	if view.Has(dataset.Followers) && view.Has(dataset.Following) {
		followers := groupValues(categories, view.Floats(dataset.Followers))
		following := groupValues(categories, view.Floats(dataset.Following))
		res.FollowStats = make(map[string]FollowStats)
		for _, s := range categories {
			if s == nil {
				continue
			}
			if _, done := res.FollowStats[*s]; done {
				continue
			}
			res.FollowStats[*s] = FollowStats{
				MedianFollowers: Float(median(followers[*s])),
				MedianFollowing: Float(median(following[*s])),
			}
		}
		res.HasAccountData = true
	}
	return res
}

// groupValues collects the non-null values of each labelled row per label
func groupValues(labels []*string, values []*float64) map[string][]float64 {
	out := make(map[string][]float64)
	for i, l := range labels {
		if l == nil || values[i] == nil {
			continue
		}
		out[*l] = append(out[*l], *values[i])
	}
	return out
}
