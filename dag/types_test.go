package dag_test

import (
	"testing"

	"github.com/ajhynes7/depth-gait-analysis/dag"
	"github.com/ajhynes7/depth-gait-analysis/geometry"
)

func TestNewPopulation_SortsByLabel(t *testing.T) {
	points := []geometry.Vec3{{X: 1}, {X: 0}, {X: 2}}
	labels := []dag.PartLabel{2, 0, 1}

	pop, err := dag.NewPopulation(points, labels)
	if err != nil {
		t.Fatal(err)
	}

	got := pop.Labels()
	want := []dag.PartLabel{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %d; want %d", i, got[i], want[i])
		}
	}
	if pop.Points()[0].X != 0 || pop.Points()[1].X != 2 || pop.Points()[2].X != 1 {
		t.Errorf("points were not carried along with their labels during sort: %v", pop.Points())
	}
}

func TestNewPopulation_LengthMismatch(t *testing.T) {
	_, err := dag.NewPopulation([]geometry.Vec3{{}}, nil)
	if err != dag.ErrLabelMismatch {
		t.Fatalf("expected ErrLabelMismatch, got %v", err)
	}
}

func TestPopulation_Validate(t *testing.T) {
	pop := dag.Population{Candidates: []dag.Candidate{
		{Label: 0}, {Label: 1}, {Label: 1},
	}}
	if err := pop.Validate(); err != nil {
		t.Errorf("expected sorted population to validate, got %v", err)
	}

	broken := dag.Population{Candidates: []dag.Candidate{
		{Label: 1}, {Label: 0},
	}}
	if err := broken.Validate(); err != dag.ErrLabelsNotSorted {
		t.Errorf("expected ErrLabelsNotSorted, got %v", err)
	}
}

func TestLabelAdjacency_ConsecutiveOnly(t *testing.T) {
	lengths := []float64{60, 20, 15, 20, 20}
	full := dag.LengthsToAdjacency(dag.DefaultPartConnections(), lengths)

	consecutive := full.ConsecutiveOnly()
	if _, ok := consecutive[1][3]; ok {
		t.Errorf("ConsecutiveOnly must drop the non-consecutive Hip->Knee pair")
	}
	if got, want := consecutive[0][1], 60.0; got != want {
		t.Errorf("consecutive[0][1] = %v; want %v", got, want)
	}
	if got, want := full[1][3], float64(20+15); got != want {
		t.Errorf("full[1][3] = %v; want %v (sum of Hip->Thigh and Thigh->Knee)", got, want)
	}
}

func TestSquaredError(t *testing.T) {
	if got, want := dag.SquaredError(5, 3), 4.0; got != want {
		t.Errorf("SquaredError(5, 3) = %v; want %v", got, want)
	}
}
