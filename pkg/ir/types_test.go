package ir

import (
	"encoding/json"
	"testing"
)

func TestWaypointJSONRoundTrip(t *testing.T) {
	w := Waypoint{X: 3, Y: -5}
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "[3,-5]" {
		t.Errorf("Marshal(%v) = %s, want [3,-5]", w, data)
	}

	var got Waypoint
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != w {
		t.Errorf("round trip = %v, want %v", got, w)
	}
}

func TestLayoutIRAddNode(t *testing.T) {
	doc := New(2)
	if err := doc.AddNode(LayoutNode{ID: 1, Kind: KindExplicit}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := doc.AddNode(LayoutNode{ID: 1, Kind: KindExplicit}); err == nil {
		t.Errorf("expected error adding duplicate node id")
	}
	idx, ok := doc.NodeIndex(1)
	if !ok || idx != 0 {
		t.Errorf("NodeIndex(1) = %d, %v, want 0, true", idx, ok)
	}
}

func TestLayoutIRValidate(t *testing.T) {
	doc := New(2)
	_ = doc.AddNode(LayoutNode{ID: 1, Kind: KindExplicit})
	_ = doc.AddNode(LayoutNode{ID: 2, Kind: KindExplicit})
	doc.Edges = append(doc.Edges, LayoutEdge{FromID: 1, ToID: 2, Path: DirectPath()})
	if err := doc.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	doc.Edges = append(doc.Edges, LayoutEdge{FromID: 1, ToID: 99, Path: DirectPath()})
	if err := doc.Validate(); err == nil {
		t.Errorf("expected error for edge referencing unknown node")
	}
}

func TestEdgePathConstructors(t *testing.T) {
	cases := []struct {
		name string
		path EdgePath
		want PathType
	}{
		{"direct", DirectPath(), PathDirect},
		{"corner", CornerPath(10), PathCorner},
		{"side_channel", SideChannelPath(1, 2, 3), PathSideChannel},
		{"multi_segment", MultiSegmentPath([]Waypoint{{X: 1, Y: 1}}), PathMultiSeg},
		{"spline", SplinePath(Waypoint{X: 1, Y: 1}, Waypoint{X: 2, Y: 2}), PathSpline},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.path.Type != c.want {
				t.Errorf("Type = %s, want %s", c.path.Type, c.want)
			}
		})
	}
}

func TestLayoutNodeIsDummy(t *testing.T) {
	n := LayoutNode{Kind: KindDummy}
	if !n.IsDummy() {
		t.Errorf("IsDummy() = false, want true")
	}
	n.Kind = KindExplicit
	if n.IsDummy() {
		t.Errorf("IsDummy() = true, want false")
	}
}
