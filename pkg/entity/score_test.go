// pkg/entity/score_test.go
package entity

import "testing"

func TestScore_Add_IncrementsOnlyGivenSide(t *testing.T) {
	var score Score

	score.Add(Left)
	score.Add(Left)
	score.Add(Right)

	if score.Left != 2 {
		t.Errorf("Left = %d, expected 2", score.Left)
	}
	if score.Right != 1 {
		t.Errorf("Right = %d, expected 1", score.Right)
	}
	if score.Get(Left) != 2 || score.Get(Right) != 1 {
		t.Errorf("Get() = %d/%d, expected 2/1", score.Get(Left), score.Get(Right))
	}
}

func TestScore_Reset_ZeroesBothTallies(t *testing.T) {
	score := Score{Left: 3, Right: 2}

	score.Reset()

	if score.Left != 0 || score.Right != 0 {
		t.Errorf("after Reset: %d/%d, expected 0/0", score.Left, score.Right)
	}
}
