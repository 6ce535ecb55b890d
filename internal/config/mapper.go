package config

// Merge overlays the non-zero values of dto onto base.
func Merge(base Config, dto YAMLConfig) Config {
	out := base

	setString(&out.SourcePath, dto.SourcePath)
	setString(&out.OutputDir, dto.OutputDir)
	setString(&out.LogoPath, dto.LogoPath)
	setString(&out.FontPaths.Bold, dto.FontPaths.Bold)
	setString(&out.FontPaths.Regular, dto.FontPaths.Regular)
	setString(&out.QRURL, dto.QRURL)
	setString(&out.IconBaseName, dto.IconBaseName)
	if dto.RoundIcons != nil {
		out.RoundIcons = *dto.RoundIcons
	}

	// Tables replace rather than merge: a partial density list in the file
	// means exactly those densities.
	if dto.Densities != nil {
		out.Densities = dto.Densities
	}
	if dto.AdaptiveDensities != nil {
		out.AdaptiveDensities = dto.AdaptiveDensities
	}

	setString(&out.Store.OutputDir, dto.Store.OutputDir)
	if dto.Store.Targets != nil {
		out.Store.Targets = dto.Store.Targets
	}

	setString(&out.Poster.Output, dto.Poster.Output)
	setString(&out.Poster.Layout, dto.Poster.Layout)
	mergePalette(&out.Poster.Palette, dto.Poster.Palette)

	setString(&out.Preview.Output, dto.Preview.Output)
	setString(&out.Serve.Addr, dto.Serve.Addr)

	return out
}

func mergePalette(dst *Palette, src Palette) {
	setString(&dst.Background, src.Background)
	setString(&dst.CardBG, src.CardBG)
	setString(&dst.CardBorder, src.CardBorder)
	setString(&dst.Primary, src.Primary)
	setString(&dst.Pink, src.Pink)
	setString(&dst.Gold, src.Gold)
	setString(&dst.Teal, src.Teal)
	setString(&dst.White, src.White)
	setString(&dst.TextSec, src.TextSec)
	setString(&dst.TextMuted, src.TextMuted)
	setString(&dst.Danger, src.Danger)
	setString(&dst.Success, src.Success)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
