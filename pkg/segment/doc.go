// Package segment divides each rentable side of the corridor into maximal
// spans between obstacles (building ends and cores). The corner flags recorded
// on each span drive corner eligibility and L-shape synthesis downstream.
package segment
