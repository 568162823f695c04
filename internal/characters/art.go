package characters

// Art assets. Line breaks and trailing spaces are significant.
const (
	ferrisArt = "\n" +
		"            _~^~^~_\n" +
		"        \\) / o o \\ (/\n" +
		"          '_ - _'\n" +
		"          / '-----' \\\n"

	cowArt = "\n" +
		"        ^__^\n" +
		"        (oo)\\_______\n" +
		"        (__)\\       )\\/\\\n" +
		"            ||----w |\n" +
		"            ||     ||\n" +
		"    "

	dragonArt = "               / \\  //\\\n" +
		"               |\\___/|      /   \\//  \\\\\n" +
		"               /0  0  \\__  /    //  | \\ \\    \n" +
		"              /     /  \\/_/    //   |  \\  \\  \n" +
		"              @_^_@'/   \\/_   //    |   \\   \\ \n" +
		"              //_^_/     \\/_ //     |    \\    \\\n" +
		"           ( //) |        \\///      |     \\     \\\n" +
		"         ( / /) _|_ /   )  //       |      \\     _\\\n" +
		"       ( // /) '/,_ _ _/  ( ; -.    |    _ _\\.-~        .-~~~^-.\n" +
		"     (( / / )) ,-{        _      `-.|.-~-.           .~         `.\n" +
		"    (( // / ))  '/\\      /                 ~-. _ .-~      .-~^-.  \\\n" +
		"    (( /// ))      `.   {            }                   /      \\  \\\n" +
		"     (( / ))     .----~-.\\        \\-'                 .~         \\  `. \\^-.\n" +
		"                 ///.----..>        \\             _ -~             `.  ^-`  ^-_\n" +
		"                   ///-._ _ _ _ _ _ _}^ - - - - ~                     ~-- ,.-~\n"

	bunnyArt = "\n" +
		"        (\\(\\ \n" +
		"        ( -.-) \n" +
		"        o_(\")(\")\n" +
		"    "
)
