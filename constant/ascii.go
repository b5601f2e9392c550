package constant

// AsciiArtLogo is the application's banner shown in the root command help.
const AsciiArtLogo = `
 _     _ _ _ _ _       _
| |__ (_) (_) (_)_ __ | | __
| '_ \| | | | | | '_ \| |/ /
| |_) | | | | | | | | |   <
|_.__/|_|_|_|_|_|_| |_|_|\_\`
