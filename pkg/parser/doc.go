// Package parser reads .style and .palette declaration files into
// [structure.Module] trees.
//
// The format is line-oriented declarations:
//
//	include "basic.style";
//
//	Toggle {
//		toggledFg: color;
//		duration: int;
//	}
//
//	windowBg: #ffffff;
//	activeFg: windowBg;
//	boxPadding: 12px;
//	boxShift: point(0px, 1px);
//	boxFont: font(13px, semibold, "Open Sans");
//	boxToggle: Toggle {
//		toggledFg: #345eb8;
//		duration: 120;
//	}
//	boxCancel: icon {
//		{ "gui/icons/box_cancel-invert", #ffffff, point(0px, 0px) },
//	};
package parser
