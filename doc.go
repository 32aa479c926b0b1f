// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtemplate

/*
Package pathtemplate builds filesystem paths from named templates and recovers
field values from existing paths.

A template is a fragment such as "{project}/shots/{shot}" with an optional
parent template; expansion joins the fragments of the whole parent chain from
root to leaf. Rules attach per-key behavior shared by every template:
a format spec for rendering ("04d"), a regular expression for parsing ("\d+")
and a Converter for typing extracted text.

Basic flow:
  - create manager (`NewManager`)
  - register templates and rules (`AddTemplate` / `AddRule`), or load them
    from YAML/TOML definitions (`LoadDefinitionsFile` + `Load`)
  - render paths (`Path`)
  - parse paths back to fields (`Fields`)
  - find the template of a path (`TemplateName`)
  - list matching files on disk (`Paths` / `PathsFS`)

Nothing is cached: every query expands the template and compiles its
expression again, so registration changes are visible immediately.
Manager is meant to be populated during setup and is not safe for
concurrent mutation.
*/
package pathtemplate
