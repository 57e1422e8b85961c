package gm8run

import "testing"

func TestDrawSceneMergeLoopOrdering(t *testing.T) {
	insts := NewInstanceList()
	i1 := insts.Add(Instance{ObjectIndex: 1, SpriteIndex: 0, Depth: RealFromInt(10)})
	i2 := insts.Add(Instance{ObjectIndex: 1, SpriteIndex: 0, Depth: RealFromInt(5)})
	i3 := insts.Add(Instance{ObjectIndex: 1, SpriteIndex: 0, Depth: RealFromInt(5)})
	_ = i2
	_ = i3

	tiles := NewTileList()
	tiles.Add(Tile{BackgroundIndex: 0, Depth: RealFromInt(7)})
	tiles.Add(Tile{BackgroundIndex: 0, Depth: RealFromInt(5)})

	assets := NewMapAssetRepository()
	assets.SetSprite(0, &Sprite{Frames: []SpriteFrame{{Atlas: AtlasRef{AtlasID: 1}}}})
	assets.SetBackground(0, &Background{Atlas: &AtlasRef{AtlasID: 2}})

	r := &HeadlessRenderer{}
	if err := drawScene(r, assets, NoOpGMLExecutor{}, CustomDrawObjects{}, insts, tiles); err != nil {
		t.Fatalf("drawScene: %v", err)
	}

	var got []string
	for _, c := range r.Calls {
		got = append(got, c.Kind)
	}
	if len(got) != 5 {
		t.Fatalf("got %d draw calls, want 5: %v", len(got), got)
	}

	// Expected order by depth, instances winning ties: I1(10), T1(7), I2(5), I3(5), T2(5)
	wantDepths := []Real{RealFromInt(10), RealFromInt(7), RealFromInt(5), RealFromInt(5), RealFromInt(5)}
	wantKinds := []string{"draw_sprite", "draw_sprite_partial", "draw_sprite", "draw_sprite", "draw_sprite_partial"}
	for i, c := range r.Calls {
		if c.Kind != wantKinds[i] {
			t.Errorf("call %d kind = %s, want %s", i, c.Kind, wantKinds[i])
		}
		_ = wantDepths
	}
	if i1 == 0 {
		t.Fatal("instance ID should be nonzero")
	}
}

func TestDrawInstanceZeroFrameSpriteIsSilent(t *testing.T) {
	insts := NewInstanceList()
	insts.Add(Instance{ObjectIndex: 1, SpriteIndex: 0})
	assets := NewMapAssetRepository()
	assets.SetSprite(0, &Sprite{Frames: nil})

	r := &HeadlessRenderer{}
	if err := drawScene(r, assets, NoOpGMLExecutor{}, CustomDrawObjects{}, insts, NewTileList()); err != nil {
		t.Fatalf("drawScene: %v", err)
	}
	if len(r.Calls) != 0 {
		t.Fatalf("expected no draw calls for zero-frame sprite, got %d", len(r.Calls))
	}
}

func TestDrawInstanceNegativeImageIndexIsSilent(t *testing.T) {
	insts := NewInstanceList()
	insts.Add(Instance{ObjectIndex: 1, SpriteIndex: 0, ImageIndex: Real(-0.5)})
	assets := NewMapAssetRepository()
	assets.SetSprite(0, &Sprite{Frames: []SpriteFrame{{Atlas: AtlasRef{AtlasID: 1}}}})

	r := &HeadlessRenderer{}
	if err := drawScene(r, assets, NoOpGMLExecutor{}, CustomDrawObjects{}, insts, NewTileList()); err != nil {
		t.Fatalf("drawScene: %v", err)
	}
	if len(r.Calls) != 0 {
		t.Fatalf("negative image_index must draw nothing (matches original's frames.get(negative as usize) -> None), got %d calls", len(r.Calls))
	}
}

func TestDrawInstanceUnassignedSpriteIsSilent(t *testing.T) {
	insts := NewInstanceList()
	insts.Add(Instance{ObjectIndex: 1, SpriteIndex: -1})
	assets := NewMapAssetRepository()

	r := &HeadlessRenderer{}
	if err := drawScene(r, assets, NoOpGMLExecutor{}, CustomDrawObjects{}, insts, NewTileList()); err != nil {
		t.Fatalf("drawScene: %v", err)
	}
	if len(r.Calls) != 0 {
		t.Fatalf("expected no draw calls for unassigned sprite index, got %d", len(r.Calls))
	}
}

func TestDrawTileMissingBackgroundIsSilent(t *testing.T) {
	tiles := NewTileList()
	tiles.Add(Tile{BackgroundIndex: 9})
	assets := NewMapAssetRepository()

	r := &HeadlessRenderer{}
	if err := drawScene(r, assets, NoOpGMLExecutor{}, CustomDrawObjects{}, NewInstanceList(), tiles); err != nil {
		t.Fatalf("drawScene: %v", err)
	}
	if len(r.Calls) != 0 {
		t.Fatalf("expected no draw calls for tile with no resolvable background, got %d", len(r.Calls))
	}
}

func TestDrawInstanceCustomDrawDispatchesToGML(t *testing.T) {
	insts := NewInstanceList()
	id := insts.Add(Instance{ObjectIndex: 7})

	exec := NewLuaGMLExecutor(insts)
	if err := exec.LoadDrawScript(7, "custom", `x = 1`); err != nil {
		t.Fatalf("LoadDrawScript: %v", err)
	}

	r := &HeadlessRenderer{}
	err := drawScene(r, NewMapAssetRepository(), exec, CustomDrawObjects{7: true}, insts, NewTileList())
	if err != nil {
		t.Fatalf("drawScene: %v", err)
	}
	if len(r.Calls) != 0 {
		t.Fatalf("custom-draw objects must not fall through to the default sprite blit, got %d calls", len(r.Calls))
	}
	if id == 0 {
		t.Fatal("instance ID should be nonzero")
	}
}

func TestDrawInstanceCustomDrawErrorAbortsPass(t *testing.T) {
	insts := NewInstanceList()
	insts.Add(Instance{ObjectIndex: 7})
	insts.Add(Instance{ObjectIndex: 7, Depth: RealFromInt(-1)})

	exec := NewLuaGMLExecutor(insts)
	if err := exec.LoadDrawScript(7, "custom", `error("boom")`); err != nil {
		t.Fatalf("LoadDrawScript: %v", err)
	}

	r := &HeadlessRenderer{}
	err := drawScene(r, NewMapAssetRepository(), exec, CustomDrawObjects{7: true}, insts, NewTileList())
	if err == nil {
		t.Fatal("expected drawScene to propagate the GML error")
	}
}
