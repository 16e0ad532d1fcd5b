/*
Package ot provides the OpenType tag type shared by the script and language-system
registries.

OpenType identifies tables, scripts, language systems, features and baselines
by 4-byte tags. Human-authored tags are frequently shorter than four characters
('lao', 'ENG'); the OpenType tag registry pads these with spaces on the right.
Package `ot` applies that padding identically on registration and lookup paths,
so that 'ABA' and 'ABA ' denote the same language system.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ot
