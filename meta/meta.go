// meta/meta.go
package meta

// EPISODES defines the number of training episodes.
const EPISODES = 500000

// EPSILON defines the exploration rate of the epsilon-greedy policy.
const EPSILON = 0.1

// SEED defines the default seed of the random source.
const SEED = 1

// MIN_DECISION_TOTAL is the lowest player total at which a decision is made;
// below it the player always hits.
const MIN_DECISION_TOTAL = 11

// PROGRESS_INTERVAL_MS defines how often the progress printer refreshes.
const PROGRESS_INTERVAL_MS = 250
